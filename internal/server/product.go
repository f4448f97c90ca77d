package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	productdomain "github.com/smallbiznis/faktur/internal/product/domain"
)

type createProductRequest struct {
	Name            string           `json:"name"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	VATRate         *decimal.Decimal `json:"vat_rate"`
	QuantityInStock *int             `json:"quantity_in_stock"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		Name:            strings.TrimSpace(req.Name),
		UnitPrice:       req.UnitPrice,
		VATRate:         req.VATRate,
		QuantityInStock: req.QuantityInStock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
