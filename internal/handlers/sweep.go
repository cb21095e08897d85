package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"oil_heating/internal/models"
	"oil_heating/internal/plot"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SweepRequest is the body of POST /api/v1/sweeps. Powers, when given,
// replaces the range.
type SweepRequest struct {
	Inputs      models.Inputs     `json:"inputs"`
	Range       models.PowerRange `json:"range"`
	Powers      []float64         `json:"powers,omitempty"`
	Policy      string            `json:"policy,omitempty" example:"skip"`
	KeepResults bool              `json:"keep_results,omitempty"`
	Record      *bool             `json:"record,omitempty"`
}

// SweepResponse wraps a finished sweep with its counts.
type SweepResponse struct {
	Count    int          `json:"count"`
	Failures int          `json:"failures"`
	Sweep    models.Sweep `json:"sweep"`
}

// @Summary      Run a power sweep
// @Description  Evaluates the calculation once per heater power. policy=stop aborts on the first failure, policy=skip marks the point failed.
// @Tags         sweeps
// @Accept       json
// @Produce      json
// @Param        body  body      SweepRequest  false  "Sweep definition"
// @Success      200   {object}  SweepResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/sweeps [post]
// @Security     BearerAuth
func (h *Handler) sweep(c *gin.Context) {
	req := SweepRequest{Inputs: h.services.Defaults(), Range: h.opts.Range, Policy: h.opts.Policy}
	if ok := h.bindOptionalJSON(c, &req); !ok {
		return
	}

	sw, err := h.services.Sweep(c.Request.Context(), service.SweepParams{
		UserID:      currentUser(c),
		Inputs:      req.Inputs,
		Range:       req.Range,
		Powers:      req.Powers,
		Policy:      req.Policy,
		KeepResults: req.KeepResults,
		Record:      req.Record == nil || *req.Record,
	}, nil)
	if err != nil {
		h.respondError(c, "sweep_failed", err, "range", req.Range, "policy", req.Policy)
		return
	}
	if h.log != nil && sw.Failures() > 0 {
		h.log.Infow("sweep_points_skipped", "failures", sw.Failures(), "points", len(sw.Points), "run_id", sw.RunID)
	}
	c.JSON(http.StatusOK, SweepResponse{Count: len(sw.Points), Failures: sw.Failures(), Sweep: sw})
}

// @Summary      Sweep chart (PDF)
// @Tags         sweeps
// @Produce      application/pdf
// @Param        start   query  number  false  "First power, W"  example(0)
// @Param        stop    query  number  false  "Exclusive upper bound, W"  example(1000001)
// @Param        step    query  number  false  "Power step, W"  example(500)
// @Param        policy  query  string  false  "Failure policy"  Enums(stop,skip)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/sweeps/chart.pdf [get]
// @Security     BearerAuth
func (h *Handler) sweepChartPDF(c *gin.Context) {
	h.renderSweep(c, contentTypePDF, "sweep.pdf", plot.WritePDF)
}

// @Summary      Sweep workbook (XLSX)
// @Tags         sweeps
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start   query  number  false  "First power, W"
// @Param        stop    query  number  false  "Exclusive upper bound, W"
// @Param        step    query  number  false  "Power step, W"
// @Param        policy  query  string  false  "Failure policy"  Enums(stop,skip)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/v1/sweeps/table.xlsx [get]
// @Security     BearerAuth
func (h *Handler) sweepTableXLSX(c *gin.Context) {
	h.renderSweep(c, contentTypeXLSX, "sweep.xlsx", plot.WriteXLSX)
}

type sweepWriter func(w io.Writer, sweep models.Sweep, title string) error

// renderSweep runs an unrecorded sweep over the default inputs and writes it
// through render. The document is buffered so a render failure still yields a JSON error.
func (h *Handler) renderSweep(c *gin.Context, contentType, filename string, render sweepWriter) {
	r, policy, err := h.parseSweepQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sw, err := h.services.Sweep(c.Request.Context(), service.SweepParams{
		UserID: currentUser(c),
		Inputs: h.services.Defaults(),
		Range:  r,
		Policy: policy,
	}, nil)
	if err == nil {
		var buf bytes.Buffer
		if err = render(&buf, sw, ""); err == nil {
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			c.Data(http.StatusOK, contentType, buf.Bytes())
			return
		}
	}
	h.respondError(c, "sweep_render_failed", err, "format", filename)
}

// parseSweepQuery reads ?start, ?stop, ?step and ?policy over the configured defaults.
func (h *Handler) parseSweepQuery(c *gin.Context) (models.PowerRange, string, error) {
	r := h.opts.Range
	for _, q := range []struct {
		name string
		dst  *float64
	}{
		{"start", &r.Start},
		{"stop", &r.Stop},
		{"step", &r.Step},
	} {
		s := c.Query(q.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.PowerRange{}, "", fmt.Errorf("invalid '%s': %q is not a number", q.name, s)
		}
		*q.dst = v
	}
	policy := c.DefaultQuery("policy", h.opts.Policy)
	return r, policy, nil
}
