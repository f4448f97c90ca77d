package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	companydomain "github.com/smallbiznis/faktur/internal/company/domain"
)

type createCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (s *Server) CreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	company, err := s.companySvc.Create(c.Request.Context(), companydomain.CreateCompanyRequest{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (s *Server) ListCompanies(c *gin.Context) {
	companies, err := s.companySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}
