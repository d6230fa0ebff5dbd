package extract

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /functions/menu-scraper
// --------------------------------------------------
func (h *Handler) MenuScraper(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMissingParameter.Error()})
		return
	}

	req.UploadedBy = c.GetString("userID")

	result, err := h.service.Extract(c.Request.Context(), req)
	if err != nil {
		c.JSON(HTTPStatus(err), ErrorBody(err))
		return
	}

	c.JSON(http.StatusOK, result)
}
