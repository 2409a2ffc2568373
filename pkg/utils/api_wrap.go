package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/planner"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates service-layer failures into the API
// envelope. Validation failures keep their message so the user can
// correct and retry; infrastructure failures log the cause and hide it.
func HandleServiceError(c *gin.Context, err error) {
	var verr *planner.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, planner.ErrNoPlacesSelected):
		RespondError(c, http.StatusBadRequest, "No places selected for the custom itinerary")
	case errors.Is(err, planner.ErrUnknownMode):
		RespondError(c, http.StatusBadRequest, "Itinerary mode must be \"ai\" or \"custom\"")
	case errors.Is(err, planner.ErrWizardComplete):
		RespondError(c, http.StatusConflict, "All wizard steps are already submitted")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrDestinationMissing):
		RespondError(c, http.StatusBadRequest, "Trip data missing. Please create a trip first")
	case errors.Is(err, ErrMissingConfig):
		log.Printf("Configuration error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Service is not configured")
	case errors.Is(err, ErrUpstreamError), errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrChatUnavailable):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream service failed, please try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
