package backend

import (
	"fmt"
	"net/http"
	"sync"
	"time"
)

// mockState backs mock-data mode: the client answers from this in-memory
// fleet instead of the network, so mutations followed by a refetch behave
// like the real backend.
type mockState struct {
	mu       sync.Mutex
	machines []Machine
	apps     []Pm2App
}

func newMockState() *mockState {
	return &mockState{
		machines: FixtureMachines(),
		apps:     FixtureApps(),
	}
}

func (m *mockState) login(email string) (LoginResponse, error) {
	return LoginResponse{
		Token: "mock-token",
		User:  LoginUser{Username: "workstation_user", Email: email, IsAdmin: true},
	}, nil
}

func (m *mockState) listMachines() []Machine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Machine(nil), m.machines...)
}

func (m *mockState) addMachine(nm NewMachine) Machine {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	created := Machine{
		ID:                      newMockMachineID(),
		MachineName:             "pending-registration",
		URLFor404API:            nm.URLFor404API,
		UserHomeDir:             nm.UserHomeDir,
		NginxStoragePathOptions: append([]string(nil), nm.NginxStoragePathOptions...),
		DateCreated:             now,
		DateLastModified:        now,
	}

	m.mu.Lock()
	m.machines = append(m.machines, created)
	m.mu.Unlock()
	return created
}

func (m *mockState) deleteMachine(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, machine := range m.machines {
		if machine.ID == id {
			m.machines = append(m.machines[:i], m.machines[i+1:]...)
			return nil
		}
	}
	return apiError(http.StatusNotFound, "machine not found")
}

func (m *mockState) listApps() []Pm2App {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Pm2App(nil), m.apps...)
}

func (m *mockState) toggleApp(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.apps {
		if m.apps[i].Name != name {
			continue
		}
		if m.apps[i].Online() {
			m.apps[i].Status = "stopped"
			m.apps[i].Uptime = 0
		} else {
			m.apps[i].Status = StatusOnline
			m.apps[i].Restarts++
		}
		return nil
	}
	return apiError(http.StatusNotFound, "app not found")
}

func (m *mockState) appLogs(name string) []string {
	return []string{
		fmt.Sprintf("[%s] started", name),
		fmt.Sprintf("[%s] listening", name),
	}
}
