package controllers

import (
	"fmt"
	"net/http"
	"time"
)

// HistorySizer is the slice of the reading service the health check needs.
type HistorySizer interface {
	HistorySize() int
}

type HealthController struct {
	history   HistorySizer
	startTime time.Time
}

type healthResponse struct {
	Status        string    `json:"status"`
	StartedAt     time.Time `json:"started_at"`
	Uptime        string    `json:"uptime"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	HistorySize   int       `json:"history_size"`
}

// Health reports liveness together with the number of ledger entries, which
// shows whether the snapshot was restored on startup.
func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.startTime)
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		StartedAt:     hc.startTime.UTC(),
		Uptime:        formatUptime(uptime),
		UptimeSeconds: uptime.Seconds(),
		HistorySize:   hc.history.HistorySize(),
	})
}

func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Second)
	days := int(d.Hours()) / 24
	if days > 0 {
		return fmt.Sprintf("%dd%s", days, (d - time.Duration(days)*24*time.Hour).String())
	}
	return d.String()
}

func NewHealthController(history HistorySizer) *HealthController {
	return &HealthController{
		history:   history,
		startTime: time.Now(),
	}
}
