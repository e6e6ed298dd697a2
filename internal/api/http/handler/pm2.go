package handler

import (
	"errors"
	"net/http"

	"github.com/costa-rica/The404-Web/internal/api/http/dto"
	"github.com/costa-rica/The404-Web/internal/screens"
	"github.com/gin-gonic/gin"
)

// Pm2Handler serves the PM2 apps screen of the connected machine.
type Pm2Handler struct {
	screen *screens.Apps
}

func NewPm2Handler(screen *screens.Apps) *Pm2Handler {
	return &Pm2Handler{screen: screen}
}

func (h *Pm2Handler) List(c *gin.Context) {
	h.screen.Load(c.Request.Context())
	view := h.screen.View(tableQuery(c))

	c.JSON(http.StatusOK, dto.AppsPage{
		Phase:       string(view.Phase),
		Error:       view.Error,
		Apps:        view.Apps,
		Total:       view.Total,
		NoMatches:   view.NoMatches,
		MachineName: view.MachineName,
	})
}

// Toggle flips one app between online and stopped.
func (h *Pm2Handler) Toggle(c *gin.Context) {
	if err := h.screen.Toggle(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(toggleStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logs returns the app's recent log lines.
func (h *Pm2Handler) Logs(c *gin.Context) {
	name := c.Param("name")
	lines, err := h.screen.Logs(c.Request.Context(), name)
	if err != nil {
		c.JSON(toggleStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.AppLogsResponse{Success: true, Name: name, Lines: lines})
}

func toggleStatus(err error) int {
	if errors.Is(err, screens.ErrNoMachineConnected) {
		return http.StatusConflict
	}
	return actionStatus(err)
}
