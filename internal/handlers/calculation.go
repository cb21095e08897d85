package handlers

import (
	"net/http"

	"oil_heating/internal/models"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// CalculationRequest is the body of POST /api/v1/calculations. Fields left
// out of inputs keep their configured default values.
type CalculationRequest struct {
	Inputs      models.Inputs `json:"inputs"`
	Description string        `json:"description,omitempty" example:"baseline"`
	Record      *bool         `json:"record,omitempty"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Default inputs
// @Tags         calculations
// @Produce      json
// @Success      200  {object}  models.Inputs
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/calculations/defaults [get]
// @Security     BearerAuth
func (h *Handler) getDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Defaults())
}

// @Summary      Run one calculation
// @Description  Partial inputs are merged over the defaults. The run is recorded unless record=false.
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        body  body      CalculationRequest  false  "Input overrides"
// @Success      200   {object}  service.CalculationOutcome
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/calculations [post]
// @Security     BearerAuth
func (h *Handler) calculate(c *gin.Context) {
	req := CalculationRequest{Inputs: h.services.Defaults()}
	if ok := h.bindOptionalJSON(c, &req); !ok {
		return
	}

	out, err := h.services.Calculate(c.Request.Context(), service.CalculationParams{
		UserID:      currentUser(c),
		Inputs:      req.Inputs,
		Description: req.Description,
		Record:      req.Record == nil || *req.Record,
	})
	if err != nil {
		h.respondError(c, "calculation_failed", err, "power", req.Inputs.Heater.Power)
		return
	}
	if h.log != nil {
		for _, w := range out.Result.Warnings {
			h.log.Infow("calculation_warning", "code", w.Code, "message", w.Message, "run_id", out.RunID)
		}
	}
	c.JSON(http.StatusOK, out)
}
