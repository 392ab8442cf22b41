package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/skypath/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	service itinerary.SearchUseCase
}

func NewSearchHandler(service itinerary.SearchUseCase) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

type searchQuery struct {
	Origin      string `form:"origin" binding:"required,len=3"`
	Destination string `form:"destination" binding:"required,len=3"`
	Date        string `form:"date" binding:"required,datetime=2006-01-02"`
}

// GET /api/flights/search?origin=JFK&destination=LAX&date=2024-03-15
func (h *SearchHandler) search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	travelDate, err := time.Parse("2006-01-02", q.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	originCode := strings.ToUpper(strings.TrimSpace(q.Origin))
	destinationCode := strings.ToUpper(strings.TrimSpace(q.Destination))

	itineraries, err := h.service.Search(c.Request.Context(), originCode, destinationCode, travelDate)
	if err != nil {
		if errors.Is(err, itinerary.ErrUnknownAirport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		responses = append(responses, toItineraryResponse(it))
	}
	c.JSON(http.StatusOK, responses)
}
