package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

// draftIDHeader carries the wizard session identity. The client mints a
// UUID on first visit and sends it on every wizard call.
const draftIDHeader = "X-Draft-ID"

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

func draftID(c *gin.Context) (string, bool) {
	id := c.GetHeader(draftIDHeader)
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "X-Draft-ID header is required")
		return "", false
	}
	return id, true
}

// GetState godoc
// @Summary Get wizard state
// @Description Current step, completion flag and the accumulated draft for the session
// @Tags Wizard
// @Produce json
// @Param X-Draft-ID header string true "Draft session ID"
// @Success 200 {object} response_models.WizardStateResponse
// @Router /api/wizard/draft [get]
func (w *WizardController) GetState(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	state, err := w.wizardService.GetState(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard state fetched successfully")
}

// SubmitStep godoc
// @Summary Submit one wizard step
// @Description Validates the step's fields, merges them into the draft and advances
// @Tags Wizard
// @Accept json
// @Produce json
// @Param X-Draft-ID header string true "Draft session ID"
// @Param step path string true "Step name"
// @Param request body request_models.SubmitStepRequest true "Step fields"
// @Success 200 {object} response_models.WizardStateResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/wizard/steps/{step} [post]
func (w *WizardController) SubmitStep(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	step := c.Param("step")
	if step == "" {
		utils.RespondError(c, http.StatusBadRequest, "Step name is required")
		return
	}

	var req request_models.SubmitStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	state, err := w.wizardService.SubmitStep(c.Request.Context(), id, step, req.Fields)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Step submitted successfully")
}

func (w *WizardController) Back(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	state, err := w.wizardService.Back(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Moved back one step")
}

func (w *WizardController) Reset(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	if err := w.wizardService.Reset(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wizard reset")
}
