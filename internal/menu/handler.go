package menu

import (
	"errors"
	"net/http"
	"strings"

	"dishly/internal/extract"
	"dishly/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /menus/upload (multipart: restaurant, menu_file)
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	restaurant := strings.TrimSpace(c.PostForm("restaurant"))
	if restaurant == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant is required"})
		return
	}

	header, err := c.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}

	result, err := h.service.UploadMenu(
		c.Request.Context(),
		restaurant,
		header,
		c.GetString("userID"),
	)

	switch {
	case errors.Is(err, upload.ErrUnsupportedFile):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	case err != nil:
		logrus.WithError(err).WithField("restaurant", restaurant).Warn("menu upload rejected")
		c.JSON(extract.HTTPStatus(err), extract.ErrorBody(err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /menus/uploads
// --------------------------------------------------
func (h *Handler) History(c *gin.Context) {
	uploads, err := h.service.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		logrus.WithError(err).Error("menu upload history failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch uploads"})
		return
	}

	c.JSON(http.StatusOK, uploads)
}
