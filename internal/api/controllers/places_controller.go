package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// GetPlacesByDestination godoc
// @Summary Get the place catalog for a destination
// @Description Categorized tourist attractions, restaurants and lodging near the destination
// @Tags Places
// @Produce json
// @Param destination path string true "Destination name"
// @Success 200 {object} response_models.PlacesResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/tour/places/{destination} [get]
func (p *PlacesController) GetPlacesByDestination(c *gin.Context) {
	destination := c.Param("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	places, err := p.placesService.GetPlacesByDestination(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// GetPreferencePlaces returns the catalog twice: as-is and reordered
// against the traveler's preference tags. Tags arrive in the
// travel_preferences query parameter (the trip payload's field name),
// repeated or comma-separated; preferences is accepted as an alias.
func (p *PlacesController) GetPreferencePlaces(c *gin.Context) {
	destination := c.Param("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	preferences := splitCSV(c.QueryArray("travel_preferences"))
	if len(preferences) == 0 {
		preferences = splitCSV(c.QueryArray("preferences"))
	}
	experienceType := c.Query("experience_type")

	places, err := p.placesService.GetPreferencePlaces(c.Request.Context(), destination, preferences, experienceType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Preference places fetched successfully")
}

func splitCSV(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
