package screens

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/costa-rica/The404-Web/internal/table"
)

// ErrMachineNotFound is returned by Connect for an id that is not in the
// loaded collection.
var ErrMachineNotFound = errors.New("machine not found")

// machineColumns is the fixed searchable/sortable field set of the
// machines table.
func machineColumns() []table.Column[backend.Machine] {
	return []table.Column[backend.Machine]{
		{Name: "machineName", String: func(m backend.Machine) string { return m.MachineName }},
		{Name: "urlFor404Api", String: func(m backend.Machine) string { return m.URLFor404API }},
		{Name: "localIpAddress", String: func(m backend.Machine) string { return m.LocalIPAddress }},
	}
}

// MachinesView is what the machines page renders.
type MachinesView struct {
	Phase            Phase
	Error            string
	Machines         []backend.Machine
	Total            int
	NoMatches        bool
	ConnectedMachine string
}

// Machines is the machines screen: the registered fleet, plus connect,
// add and delete actions.
type Machines struct {
	client *backend.Client
	store  *session.Store
	table  *table.Table[backend.Machine]
	state  collection[backend.Machine]
}

func NewMachines(client *backend.Client, store *session.Store) *Machines {
	return &Machines{
		client: client,
		store:  store,
		table:  table.New(machineColumns()...),
		state:  newCollection[backend.Machine](),
	}
}

// Load performs the mount fetch. Errors land in the error phase with the
// user-facing message; the screen never panics out of a bad payload.
func (s *Machines) Load(ctx context.Context) {
	s.state.setLoading()

	machines, err := s.client.ListMachines(ctx, s.store.Token())
	if err != nil {
		slog.Error("Failed to load machines", "error", err)
		s.state.setError(err.Error())
		return
	}
	s.state.setReady(machines)
}

// View applies the table query to the current state.
func (s *Machines) View(q table.Query) MachinesView {
	phase, message, items := s.state.snapshot()
	view := MachinesView{
		Phase:            phase,
		Error:            message,
		ConnectedMachine: s.store.Snapshot().MachineName,
	}
	if phase != PhaseReady {
		return view
	}

	res := s.table.Apply(items, q)
	view.Machines = res.Rows
	view.Total = res.Total
	view.NoMatches = res.NoMatches()
	return view
}

// Connect makes the machine with the given id the active machine context.
// A previous connection is silently replaced.
func (s *Machines) Connect(id string) error {
	_, _, items := s.state.snapshot()
	for _, m := range items {
		if m.ID == id {
			s.store.ConnectMachine(m.MachineName, m.URLFor404API, m.NginxStoragePathOptions)
			slog.Info("Connected to machine", "machine", m.MachineName, "url", m.URLFor404API)
			return nil
		}
	}
	return ErrMachineNotFound
}

// Disconnect clears the active machine context.
func (s *Machines) Disconnect() {
	s.store.DisconnectMachine()
}

// Add registers a machine and refetches the authoritative collection.
func (s *Machines) Add(ctx context.Context, m backend.NewMachine) (backend.Machine, error) {
	if strings.TrimSpace(m.URLFor404API) == "" {
		return backend.Machine{}, errors.New("API URL is required")
	}
	m.URLFor404API = strings.TrimSpace(m.URLFor404API)
	m.UserHomeDir = strings.TrimSpace(m.UserHomeDir)
	m.NginxStoragePathOptions = compactPaths(m.NginxStoragePathOptions)

	created, err := s.client.AddMachine(ctx, s.store.Token(), m)
	if err != nil {
		return backend.Machine{}, err
	}

	s.refetch(ctx, func(items []backend.Machine) []backend.Machine {
		return append(items, created)
	})
	return created, nil
}

// Delete removes a machine and refetches. If the machine being deleted is
// the connected one, the active context is cleared once the backend has
// confirmed the delete; a failed delete leaves the connection intact.
func (s *Machines) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteMachine(ctx, s.store.Token(), id); err != nil {
		return err
	}

	_, _, items := s.state.snapshot()
	for _, m := range items {
		if m.ID == id && m.MachineName == s.store.Snapshot().MachineName {
			s.store.DisconnectMachine()
		}
	}

	s.refetch(ctx, func(items []backend.Machine) []backend.Machine {
		return removeByID(items, id)
	})
	return nil
}

// refetch pulls the collection again after a successful mutation. When
// the refetch itself fails the local fallback is applied instead; the
// screen stays ready rather than reverting to loading.
func (s *Machines) refetch(ctx context.Context, fallback func([]backend.Machine) []backend.Machine) {
	machines, err := s.client.ListMachines(ctx, s.store.Token())
	if err != nil {
		slog.Warn("Refetch after mutation failed, keeping local view", "error", err)
		s.state.replaceWhere(fallback)
		return
	}
	s.state.setReady(machines)
}

// removeByID filters out one machine, preserving relative order.
func removeByID(items []backend.Machine, id string) []backend.Machine {
	out := make([]backend.Machine, 0, len(items))
	for _, m := range items {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

func compactPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
