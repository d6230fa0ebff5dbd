package food

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dishly/internal/geo"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func queryLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.Query("limit"))
	return limit
}

// --------------------------------------------------
// GET /foods/trending, /foods/recommended
// --------------------------------------------------
func (h *Handler) Trending(c *gin.Context) {
	foods, err := h.service.Trending(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.fail(c, err, "failed to fetch trending foods")
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) Recommended(c *gin.Context) {
	foods, err := h.service.Recommended(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.fail(c, err, "failed to fetch recommended foods")
		return
	}
	c.JSON(http.StatusOK, foods)
}

// --------------------------------------------------
// GET /foods/search?q=&tag=
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	foods, err := h.service.Search(c.Request.Context(), c.Query("q"), c.Query("tag"))
	if err != nil {
		h.fail(c, err, "failed to search foods")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":       foods,
		"map_embed_url": h.service.MapForFoods(foods),
	})
}

// --------------------------------------------------
// GET /foods?ids=a,b
// --------------------------------------------------
func (h *Handler) Batch(c *gin.Context) {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	foods, err := h.service.Batch(c.Request.Context(), ids)
	if err != nil {
		h.fail(c, err, "failed to fetch foods")
		return
	}
	c.JSON(http.StatusOK, foods)
}

// --------------------------------------------------
// GET /foods/:id?lat=&lng=
// --------------------------------------------------
func (h *Handler) Detail(c *gin.Context) {
	var origin *geo.LatLng
	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must both be numbers"})
			return
		}
		origin = &geo.LatLng{Lat: lat, Lng: lng}
	}

	detail, err := h.service.Detail(c.Request.Context(), c.Param("id"), origin)
	if err != nil {
		h.fail(c, err, "failed to fetch food")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// --------------------------------------------------
// REVIEWS
// --------------------------------------------------
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.service.Reviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) AddReview(c *gin.Context) {
	var req struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.service.AddReview(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("userID"),
		req.Rating,
		req.Text,
	)
	if err != nil {
		h.fail(c, err, "failed to add review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// --------------------------------------------------
// SAVED
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	if err := h.service.Save(c.Request.Context(), c.GetString("userID"), c.Param("foodID")); err != nil {
		h.fail(c, err, "failed to save food")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) Unsave(c *gin.Context) {
	if err := h.service.Unsave(c.Request.Context(), c.GetString("userID"), c.Param("foodID")); err != nil {
		h.fail(c, err, "failed to unsave food")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}

func (h *Handler) ListSaved(c *gin.Context) {
	foods, err := h.service.Saved(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		h.fail(c, err, "failed to fetch saved foods")
		return
	}
	c.JSON(http.StatusOK, foods)
}
