package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"oil_heating/internal/models"
	"oil_heating/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	maxMsgSize       = 1 << 12 // 4 KB
	maxInterval      = time.Second
	maxIntervalMilli = 1_000
)

// Envelope types sent on /ws/sweep.
const (
	wsTypePoint = "point"
	wsTypeDone  = "done"
	wsTypeError = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

type wsDone struct {
	Count    int `json:"count"`
	Failures int `json:"failures"`
}

var upgrader = websocket.Upgrader{
	// TODO: restrict origins once the dashboard host is fixed
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsSweep streams one "point" envelope per power value, then "done" or "error".
// Query: start, stop, step, policy, and interval / interval_ms to pace points.
func (h *Handler) wsSweep(c *gin.Context) {
	r, policy, err := h.parseSweepQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The sweep is abandoned as soon as the client goes away.
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	done := make(chan struct{})
	go h.startReader(conn, done)
	go func() {
		select {
		case <-done:
			cancel()
		case <-ctx.Done():
		}
	}()

	onPoint := func(pt models.SweepPoint) error {
		if err := writeEnvelope(conn, wsEnvelope{Type: wsTypePoint, Data: pt}); err != nil {
			return err
		}
		if pt.Failed && h.log != nil {
			h.log.Infow("sweep_point_skipped", "index", pt.Index, "power", pt.Power, "err", pt.Error)
		}
		if interval <= 0 {
			return nil
		}
		t := time.NewTimer(interval)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	sw, err := h.services.Sweep(ctx, service.SweepParams{
		Inputs: h.services.Defaults(),
		Range:  r,
		Policy: policy,
	}, onPoint)

	var final wsEnvelope
	switch {
	case errors.Is(err, context.Canceled):
		return
	case err != nil:
		if h.log != nil {
			h.log.Infow("ws_sweep_failed", "err", err)
		}
		final = wsEnvelope{Type: wsTypeError, Error: err.Error()}
	default:
		final = wsEnvelope{Type: wsTypeDone, Data: wsDone{Count: len(sw.Points), Failures: sw.Failures()}}
	}
	if err := writeEnvelope(conn, final); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed", "err", err)
		}
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}

// parseInterval reads ?interval=50ms or ?interval_ms=50 with bounds. Zero means no pacing.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return 0
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}
