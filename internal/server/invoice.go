package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/smallbiznis/faktur/internal/order/domain"
)

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.orderSvc.ListInvoices(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (s *Server) ExportInvoicePDF(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvoiceNotFound)
		return
	}

	invoice, err := s.orderSvc.GetInvoice(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.pdfGen.GenerateInvoice(c.Request.Context(), invoice)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := io.ReadAll(doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%d.pdf"`, invoice.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}
