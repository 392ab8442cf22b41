package api

import (
	"net/http"

	"github.com/Domenick1991/skypath/internal/service/itinerary"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service itinerary.SearchUseCase
}

func NewAirportHandler(service itinerary.SearchUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports := h.service.ListAirports(c.Request.Context())

	summaries := make([]AirportSummary, 0, len(airports))
	for _, a := range airports {
		summaries = append(summaries, AirportSummary{
			Code:    a.Code,
			City:    a.City,
			Name:    a.Name,
			Country: a.Country,
		})
	}
	c.JSON(http.StatusOK, summaries)
}
