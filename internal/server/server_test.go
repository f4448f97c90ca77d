package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/faktur/internal/clock"
	companydomain "github.com/smallbiznis/faktur/internal/company/domain"
	companyrepo "github.com/smallbiznis/faktur/internal/company/repository"
	companysvc "github.com/smallbiznis/faktur/internal/company/service"
	"github.com/smallbiznis/faktur/internal/config"
	orderdomain "github.com/smallbiznis/faktur/internal/order/domain"
	orderrepo "github.com/smallbiznis/faktur/internal/order/repository"
	ordersvc "github.com/smallbiznis/faktur/internal/order/service"
	pdfprovider "github.com/smallbiznis/faktur/internal/providers/pdf"
	productdomain "github.com/smallbiznis/faktur/internal/product/domain"
	productrepo "github.com/smallbiznis/faktur/internal/product/repository"
	productsvc "github.com/smallbiznis/faktur/internal/product/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serverEnv struct {
	engine *gin.Engine
	clock  *clock.FakeClock
	db     *gorm.DB
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companydomain.Company{},
		&productdomain.Product{},
		&orderdomain.Order{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fakeClock := clock.NewFakeClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	log := zap.NewNop()
	cfg := config.Config{AppName: "faktur", Environment: "test", HTTPAddr: ":0"}

	companyService := companysvc.New(companysvc.Params{
		DB: db, Log: log, GenID: node, Clock: fakeClock, Repo: companyrepo.Provide(),
	})
	productService := productsvc.New(productsvc.Params{
		DB: db, Log: log, GenID: node, Clock: fakeClock, Repo: productrepo.Provide(),
	})
	orderService := ordersvc.New(ordersvc.Params{
		DB:          db,
		Log:         log,
		GenID:       node,
		Clock:       fakeClock,
		Repo:        orderrepo.Provide(),
		CompanyRepo: companyrepo.Provide(),
		ProductRepo: productrepo.Provide(),
	})

	engine := NewEngine(cfg, log)
	NewServer(ServerParams{
		Gin:        engine,
		Cfg:        cfg,
		Clock:      fakeClock,
		CompanySvc: companyService,
		ProductSvc: productService,
		OrderSvc:   orderService,
		PDFGen: pdfprovider.New(config.NewStaticInvoicingConfigHolder(config.InvoicingConfig{
			Currency:   "EUR",
			SellerName: "Faktur GmbH",
		})),
	})

	return &serverEnv{engine: engine, clock: fakeClock, db: db}
}

func (e *serverEnv) do(t *testing.T, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func (e *serverEnv) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return e.do(t, http.MethodPost, path, "application/json", body)
}

func (e *serverEnv) seedCompanyAndProduct(t *testing.T) (companyID, productID int64) {
	t.Helper()

	rec := e.postJSON(t, "/api/companies", gin.H{"name": "ABC Corp", "address": "Mumbai"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var company companydomain.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &company))

	rec = e.postJSON(t, "/api/products", gin.H{"name": "Widget", "unit_price": "100", "vat_rate": "18", "quantity_in_stock": 10})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product productdomain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	return company.ID, product.ID
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLiveness(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Backend is running", resp.Status)
	assert.Equal(t, env.clock.Now(), resp.Timestamp.UTC())
}

func TestCreateCompanyEndpoint(t *testing.T) {
	env := newServerEnv(t)

	rec := env.postJSON(t, "/api/companies", gin.H{"name": "ABC Corp", "address": "Mumbai"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var company companydomain.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &company))
	assert.NotZero(t, company.ID)
	assert.Equal(t, "ABC Corp", company.Name)

	rec = env.do(t, http.MethodGet, "/api/companies", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var companies []companydomain.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &companies))
	assert.Len(t, companies, 1)
}

func TestCreateCompanyEndpoint_Invalid(t *testing.T) {
	env := newServerEnv(t)

	rec := env.postJSON(t, "/api/companies", gin.H{"address": "Mumbai"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Type)

	rec = env.do(t, http.MethodPost, "/api/companies", "application/json", []byte("{not json"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Type)
}

func TestCreateProductEndpoint_Invalid(t *testing.T) {
	env := newServerEnv(t)

	// unit_price missing entirely.
	rec := env.postJSON(t, "/api/products", gin.H{"name": "Widget", "vat_rate": "18"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Type)

	rec = env.postJSON(t, "/api/products", gin.H{"name": "Widget", "unit_price": "-1", "vat_rate": "18"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := newServerEnv(t)
	companyID, productID := env.seedCompanyAndProduct(t)

	rec := env.postJSON(t, "/api/orders", gin.H{
		"company_id": companyID,
		"product_id": productID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 2, resp.Quantity)
	assert.True(t, resp.VATAmount.Equal(decimal.RequireFromString("36")), "vat = %s", resp.VATAmount)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("236")), "total = %s", resp.TotalPrice)
}

func TestCreateOrderEndpoint_XML(t *testing.T) {
	env := newServerEnv(t)
	companyID, productID := env.seedCompanyAndProduct(t)

	body := fmt.Sprintf(
		"<order><company_id>%d</company_id><product_id>%d</product_id><quantity>2</quantity></order>",
		companyID, productID,
	)
	rec := env.do(t, http.MethodPost, "/api/orders", "application/xml", []byte(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("236")))
}

func TestCreateOrderEndpoint_ErrorMapping(t *testing.T) {
	env := newServerEnv(t)
	companyID, productID := env.seedCompanyAndProduct(t)

	// Missing quantity binds to zero and fails validation.
	rec := env.postJSON(t, "/api/orders", gin.H{"company_id": companyID, "product_id": productID})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Type)

	rec = env.postJSON(t, "/api/orders", gin.H{"company_id": companyID, "product_id": 999999, "quantity": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Type)

	rec = env.postJSON(t, "/api/orders", gin.H{"company_id": 999999, "product_id": productID, "quantity": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListInvoicesEndpoint(t *testing.T) {
	env := newServerEnv(t)
	companyID, productID := env.seedCompanyAndProduct(t)

	for i := 0; i < 2; i++ {
		rec := env.postJSON(t, "/api/orders", gin.H{"company_id": companyID, "product_id": productID, "quantity": 1})
		require.Equal(t, http.StatusCreated, rec.Code)
		env.clock.Advance(time.Minute)
	}

	rec := env.do(t, http.MethodGet, "/api/invoices", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var invoices []orderdomain.InvoiceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &invoices))
	require.Len(t, invoices, 2)
	assert.Equal(t, "ABC Corp", invoices[0].CompanyName)
	assert.Equal(t, "Widget", invoices[0].ProductName)
	assert.True(t, invoices[0].OrderDate.After(invoices[1].OrderDate))
}

func TestExportInvoicePDFEndpoint(t *testing.T) {
	env := newServerEnv(t)
	companyID, productID := env.seedCompanyAndProduct(t)

	rec := env.postJSON(t, "/api/orders", gin.H{"company_id": companyID, "product_id": productID, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/invoices/%d/pdf", order.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Header().Get("Content-Disposition"), "attachment"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

	rec = env.do(t, http.MethodGet, "/api/invoices/999999/pdf", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/invoices/not-a-number/pdf", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
