package restaurant

import (
	"errors"
	"net/http"

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
// POST /restaurants
// --------------------------------------------------
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req Restaurant
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), &req)
	if errors.Is(err, ErrNameTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"restaurant": restaurant.Name,
		"by":         c.GetString("userID"),
	}).Info("restaurant created")

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list restaurants failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// GET /restaurants/by-name/:name/foods
// --------------------------------------------------
func (h *Handler) FoodsByName(c *gin.Context) {
	restaurant, foods, err := h.service.Menu(c.Request.Context(), c.Param("name"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.WithError(err).Error("restaurant menu failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant,
		"foods":      foods,
	})
}
