package handler

import (
	"errors"
	"net/http"

	"github.com/costa-rica/The404-Web/internal/api/http/dto"
	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/screens"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/costa-rica/The404-Web/internal/table"
	"github.com/gin-gonic/gin"
)

// MachinesHandler serves the machines screen and its actions.
type MachinesHandler struct {
	screen *screens.Machines
	store  *session.Store
}

func NewMachinesHandler(screen *screens.Machines, store *session.Store) *MachinesHandler {
	return &MachinesHandler{screen: screen, store: store}
}

// tableQuery reads the search/sort query parameters shared by the
// collection pages.
func tableQuery(c *gin.Context) table.Query {
	return table.Query{
		Search: c.Query("q"),
		Sort: table.SortState{
			Column:    c.Query("sort"),
			Direction: table.ParseDirection(c.Query("dir")),
		},
	}
}

// List is the page mount: one fetch, then the table query applied to the
// result.
func (h *MachinesHandler) List(c *gin.Context) {
	h.screen.Load(c.Request.Context())
	view := h.screen.View(tableQuery(c))

	c.JSON(http.StatusOK, dto.MachinesPage{
		Phase:            string(view.Phase),
		Error:            view.Error,
		Machines:         view.Machines,
		Total:            view.Total,
		NoMatches:        view.NoMatches,
		ConnectedMachine: view.ConnectedMachine,
	})
}

// Add registers a machine. On success the screen has already refetched,
// so the response closing the modal leaves the list current.
func (h *MachinesHandler) Add(c *gin.Context) {
	var req dto.AddMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "API URL is required"})
		return
	}

	created, err := h.screen.Add(c.Request.Context(), backend.NewMachine{
		URLFor404API:            req.URLFor404API,
		UserHomeDir:             req.UserHomeDir,
		NginxStoragePathOptions: req.NginxStoragePathOptions,
	})
	if err != nil {
		c.JSON(actionStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.AddMachineResponse{Success: true, Machine: created})
}

// Delete removes a machine by id.
func (h *MachinesHandler) Delete(c *gin.Context) {
	if err := h.screen.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(actionStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Connect selects a machine as the active context for machine-scoped
// calls.
func (h *MachinesHandler) Connect(c *gin.Context) {
	h.screen.Load(c.Request.Context())
	if err := h.screen.Connect(c.Param("id")); err != nil {
		if errors.Is(err, screens.ErrMachineNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(actionStatus(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	st := h.store.Snapshot()
	c.JSON(http.StatusOK, dto.ConnectResponse{
		Success:                 true,
		MachineName:             st.MachineName,
		URLFor404API:            st.URLFor404API,
		NginxStoragePathOptions: st.NginxStoragePathOptions,
	})
}

// Disconnect clears the active machine context.
func (h *MachinesHandler) Disconnect(c *gin.Context) {
	h.screen.Disconnect()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// actionStatus maps backend errors onto response codes: the backend's own
// status when it reported one, 401 for a missing token, 502 for
// transport failures, 500 otherwise.
func actionStatus(err error) int {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if errors.Is(err, backend.ErrNoToken) {
		return http.StatusUnauthorized
	}
	var connErr *backend.ConnectionError
	if errors.As(err, &connErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
