package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type GeocodeController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewGeocodeController(geocodeService services.GeocodeServiceInterface) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
	}
}

// Resolve is best effort: an unknown address answers 200 with
// found=false so the map renders without a marker.
func (g *GeocodeController) Resolve(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "Address is required")
		return
	}

	coords := g.geocodeService.Resolve(c.Request.Context(), address)
	utils.RespondSuccess(c, coords, "Geocode resolved")
}
