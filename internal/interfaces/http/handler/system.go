package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pobuilder/backend/internal/interfaces/http/dto"
)

// SessionCounter reports how many editing sessions are held
type SessionCounter interface {
	Count(ctx context.Context) int
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	name      string
	version   string
	sessions  SessionCounter
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(name, version string, sessions SessionCounter) *SystemHandler {
	return &SystemHandler{
		name:      name,
		version:   version,
		sessions:  sessions,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
// @name HandlerSystemInfoResponse
type SystemInfoResponse struct {
	Name           string `json:"name" example:"po-builder"`
	Version        string `json:"version" example:"1.0.0"`
	GoVersion      string `json:"go_version" example:"go1.25.5"`
	Uptime         string `json:"uptime" example:"1h30m45s"`
	ActiveSessions int    `json:"active_sessions" example:"3"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version, uptime and open sessions
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	if h.sessions != nil {
		info.ActiveSessions = h.sessions.Count(c.Request.Context())
	}

	h.Success(c, info)
}

// PingResponse represents the ping response
// @name HandlerPingResponse
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Simple ping endpoint to check if the API is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[PingResponse]
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Health answers liveness probes outside the versioned API
func (h *SystemHandler) Health(c *gin.Context) {
	body := gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	}
	if h.sessions != nil {
		body["sessions"] = h.sessions.Count(c.Request.Context())
	}
	c.JSON(http.StatusOK, body)
}
