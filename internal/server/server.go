package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/faktur/internal/clock"
	companydomain "github.com/smallbiznis/faktur/internal/company/domain"
	"github.com/smallbiznis/faktur/internal/config"
	"github.com/smallbiznis/faktur/internal/logger"
	orderdomain "github.com/smallbiznis/faktur/internal/order/domain"
	"github.com/smallbiznis/faktur/internal/providers/pdf"
	productdomain "github.com/smallbiznis/faktur/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the HTTP server.
var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log.Named("http"), logger.MiddlewareConfig{
		Debug:           cfg.Environment != "production",
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	clock      clock.Clock
	companySvc companydomain.Service
	productSvc productdomain.Service
	orderSvc   orderdomain.Service
	pdfGen     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Clock      clock.Clock
	CompanySvc companydomain.Service
	ProductSvc productdomain.Service
	OrderSvc   orderdomain.Service
	PDFGen     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		clock:      p.Clock,
		companySvc: p.CompanySvc,
		productSvc: p.ProductSvc,
		orderSvc:   p.OrderSvc,
		pdfGen:     p.PDFGen,
	}

	svc.registerRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.Liveness)

	api := s.engine.Group("/api")

	// -------- Companies --------
	api.GET("/companies", s.ListCompanies)
	api.POST("/companies", s.CreateCompany)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)

	// -------- Orders / Invoices --------
	api.POST("/orders", s.CreateOrder)
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id/pdf", s.ExportInvoicePDF)
}

// Liveness reports the backend is up, mirroring the legacy root check.
func (s *Server) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Backend is running",
		"timestamp": s.clock.Now(),
	})
}
