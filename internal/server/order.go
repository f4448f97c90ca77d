package server

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	orderdomain "github.com/smallbiznis/faktur/internal/order/domain"
)

// createOrderRequest binds both the JSON body and the XML alternative
// (<order><company_id/><product_id/><quantity/></order>).
type createOrderRequest struct {
	XMLName   xml.Name `json:"-" xml:"order"`
	CompanyID int64    `json:"company_id" xml:"company_id"`
	ProductID int64    `json:"product_id" xml:"product_id"`
	Quantity  int      `json:"quantity" xml:"quantity"`
}

type orderResponse struct {
	ID         int64           `json:"id"`
	CompanyID  int64           `json:"company_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	VATAmount  decimal.Decimal `json:"vat_amount"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest

	var bindErr error
	if strings.HasPrefix(c.ContentType(), "application/xml") || strings.HasPrefix(c.ContentType(), "text/xml") {
		bindErr = c.ShouldBindXML(&req)
	} else {
		bindErr = c.ShouldBindJSON(&req)
	}
	if bindErr != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	order, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		CompanyID: req.CompanyID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, orderResponse{
		ID:         order.ID,
		CompanyID:  order.CompanyID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		VATAmount:  order.VATAmount,
		TotalPrice: order.TotalPrice,
	})
}
