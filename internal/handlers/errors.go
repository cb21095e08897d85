package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"oil_heating/internal/physics"
	"oil_heating/internal/plot"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON decodes the body over the values already in dst.
// An empty body leaves dst untouched.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil && len(bytes.TrimSpace(body)) == 0 {
		return true
	}
	if err == nil {
		err = binding.JSON.BindBody(body, dst)
	}
	if err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// respondError maps service and physics errors onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	var (
		pe *physics.PreconditionError
		se *service.SweepError
	)
	switch {
	case errors.As(err, &pe):
		resp := gin.H{"error": err.Error(), "field": pe.Field}
		if errors.As(err, &se) {
			resp["index"] = se.Index
			resp["power"] = se.Power
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, plot.ErrNoData):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidSweep), errors.Is(err, service.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}
}
