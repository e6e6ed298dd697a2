package screens

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/costa-rica/The404-Web/internal/table"
)

// ErrNoMachineConnected is returned when a PM2 operation is attempted
// without an active machine context.
var ErrNoMachineConnected = errors.New("no machine connected")

func appColumns() []table.Column[backend.Pm2App] {
	return []table.Column[backend.Pm2App]{
		{Name: "name", String: func(a backend.Pm2App) string { return a.Name }},
		{Name: "status", String: func(a backend.Pm2App) string { return a.Status }},
		{
			Name: "port",
			String: func(a backend.Pm2App) string {
				if a.Port == nil {
					return ""
				}
				return strconv.Itoa(*a.Port)
			},
			Less: func(a, b backend.Pm2App) bool {
				// Apps without a port sort last.
				if a.Port == nil {
					return false
				}
				if b.Port == nil {
					return true
				}
				return *a.Port < *b.Port
			},
		},
	}
}

// AppsView is what the PM2 apps page renders.
type AppsView struct {
	Phase       Phase
	Error       string
	Apps        []backend.Pm2App
	Total       int
	NoMatches   bool
	MachineName string
}

// Apps is the PM2 apps screen for the connected machine.
type Apps struct {
	client *backend.Client
	store  *session.Store
	table  *table.Table[backend.Pm2App]
	state  collection[backend.Pm2App]
}

func NewApps(client *backend.Client, store *session.Store) *Apps {
	return &Apps{
		client: client,
		store:  store,
		table:  table.New(appColumns()...),
		state:  newCollection[backend.Pm2App](),
	}
}

// Load fetches the app list from the connected machine's API.
func (s *Apps) Load(ctx context.Context) {
	s.state.setLoading()

	st := s.store.Snapshot()
	if !st.MachineConnected() {
		s.state.setError(ErrNoMachineConnected.Error())
		return
	}

	apps, err := s.client.ListApps(ctx, st.Token, st.URLFor404API)
	if err != nil {
		slog.Error("Failed to load PM2 apps", "machine", st.MachineName, "error", err)
		s.state.setError(err.Error())
		return
	}
	s.state.setReady(apps)
}

func (s *Apps) View(q table.Query) AppsView {
	phase, message, items := s.state.snapshot()
	view := AppsView{
		Phase:       phase,
		Error:       message,
		MachineName: s.store.Snapshot().MachineName,
	}
	if phase != PhaseReady {
		return view
	}

	res := s.table.Apply(items, q)
	view.Apps = res.Rows
	view.Total = res.Total
	view.NoMatches = res.NoMatches()
	return view
}

// Toggle stops an online app or starts a stopped one, then refetches.
func (s *Apps) Toggle(ctx context.Context, name string) error {
	st := s.store.Snapshot()
	if !st.MachineConnected() {
		return ErrNoMachineConnected
	}

	if err := s.client.ToggleApp(ctx, st.Token, st.URLFor404API, name); err != nil {
		return err
	}

	apps, err := s.client.ListApps(ctx, st.Token, st.URLFor404API)
	if err != nil {
		slog.Warn("Refetch after toggle failed, mirroring status locally", "app", name, "error", err)
		s.state.replaceWhere(func(items []backend.Pm2App) []backend.Pm2App {
			return mirrorToggle(items, name)
		})
		return nil
	}
	s.state.setReady(apps)
	return nil
}

// Logs returns the recent log lines of one app.
func (s *Apps) Logs(ctx context.Context, name string) ([]string, error) {
	st := s.store.Snapshot()
	if !st.MachineConnected() {
		return nil, ErrNoMachineConnected
	}
	return s.client.AppLogs(ctx, st.Token, st.URLFor404API, name)
}

func mirrorToggle(items []backend.Pm2App, name string) []backend.Pm2App {
	for i := range items {
		if items[i].Name == name {
			if items[i].Online() {
				items[i].Status = "stopped"
			} else {
				items[i].Status = backend.StatusOnline
			}
		}
	}
	return items
}
