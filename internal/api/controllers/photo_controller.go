package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PhotoController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotoController(photoService services.PhotoServiceInterface) *PhotoController {
	return &PhotoController{
		photoService: photoService,
	}
}

// GetPhoto streams the photo bytes directly so an <img> tag can point at
// this endpoint; the maps API key never reaches the browser.
func (p *PhotoController) GetPhoto(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Photo name is required")
		return
	}

	maxWidth, err := strconv.Atoi(c.DefaultQuery("maxWidthPx", "600"))
	if err != nil || maxWidth < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid maxWidthPx")
		return
	}

	data, contentType, err := p.photoService.GetPhoto(c.Request.Context(), name, maxWidth)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, contentType, data)
}
