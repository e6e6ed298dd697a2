package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/costa-rica/The404-Web/internal/backend"
	"github.com/costa-rica/The404-Web/internal/session"
	"github.com/costa-rica/The404-Web/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInStore() *session.Store {
	store := session.NewStore()
	store.LoginUser("tok", session.User{Username: "nick"})
	return store
}

func mockScreen() (*Machines, *session.Store) {
	store := loggedInStore()
	client := backend.NewClient(backend.Config{UseMockData: true})
	return NewMachines(client, store), store
}

func TestMachinesLoadReady(t *testing.T) {
	screen, _ := mockScreen()
	screen.Load(context.Background())

	view := screen.View(table.Query{})
	assert.Equal(t, PhaseReady, view.Phase)
	assert.Len(t, view.Machines, 5)
	assert.Equal(t, 5, view.Total)
}

func TestMachinesSearchSubset(t *testing.T) {
	screen, _ := mockScreen()
	screen.Load(context.Background())

	view := screen.View(table.Query{Search: "nn"})
	require.Len(t, view.Machines, 2)
	assert.Equal(t, "nnDev", view.Machines[0].MachineName)
	assert.Equal(t, "nnProd", view.Machines[1].MachineName)
	assert.Equal(t, 5, view.Total)
	assert.False(t, view.NoMatches)

	// IP and API URL are searched too.
	view = screen.View(table.Query{Search: "192.168.1.193"})
	require.Len(t, view.Machines, 1)
	assert.Equal(t, "Nicks-Mac-mini.local", view.Machines[0].MachineName)

	view = screen.View(table.Query{Search: "no-such-machine"})
	assert.Empty(t, view.Machines)
	assert.True(t, view.NoMatches)
}

func TestMachinesLoadWithoutToken(t *testing.T) {
	store := session.NewStore()
	client := backend.NewClient(backend.Config{UseMockData: true})
	screen := NewMachines(client, store)

	screen.Load(context.Background())

	view := screen.View(table.Query{})
	assert.Equal(t, PhaseError, view.Phase)
	assert.NotEmpty(t, view.Error)
}

func TestMachinesLoadMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":true}`))
	}))
	defer srv.Close()

	store := loggedInStore()
	client := backend.NewClient(backend.Config{BaseURL: srv.URL})
	screen := NewMachines(client, store)

	screen.Load(context.Background())

	view := screen.View(table.Query{})
	assert.Equal(t, PhaseError, view.Phase)
	assert.Equal(t, "Invalid response format from API", view.Error)
}

func TestMachinesConnect(t *testing.T) {
	screen, store := mockScreen()
	screen.Load(context.Background())

	require.NoError(t, screen.Connect("67fcb31d408d1b1b3a705f5a"))

	st := store.Snapshot()
	assert.Equal(t, "maestro03", st.MachineName)
	assert.Equal(t, "https://maestro03.the404api.dashanddata.com", st.URLFor404API)
	assert.Equal(t, []string{"/home/nick", "/etc/nginx/conf.d", "/etc/nginx/sites-available"}, st.NginxStoragePathOptions)

	// A second connect replaces the first.
	require.NoError(t, screen.Connect("6805ffdcaa2d0072c1a3502c"))
	assert.Equal(t, "nnDev", store.Snapshot().MachineName)

	assert.ErrorIs(t, screen.Connect("unknown-id"), ErrMachineNotFound)
}

func TestMachinesDeleteFirstOfTwoKeepsSecond(t *testing.T) {
	two := backend.FixtureMachines()[:2]
	mux := http.NewServeMux()
	mux.HandleFunc("/machines", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(backend.MachinesResponse{Result: true, ExistingMachines: two})
	})
	mux.HandleFunc("/machines/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		two = two[1:]
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := loggedInStore()
	client := backend.NewClient(backend.Config{BaseURL: srv.URL})
	screen := NewMachines(client, store)

	screen.Load(context.Background())
	require.NoError(t, screen.Delete(context.Background(), "6772c80b0391cbca4d643214"))

	view := screen.View(table.Query{})
	require.Len(t, view.Machines, 1)
	assert.Equal(t, "maestro03", view.Machines[0].MachineName)
}

func TestMachinesDeleteConnectedMachineDisconnects(t *testing.T) {
	screen, store := mockScreen()
	screen.Load(context.Background())

	require.NoError(t, screen.Connect("67fcb31d408d1b1b3a705f5a"))
	require.NoError(t, screen.Delete(context.Background(), "67fcb31d408d1b1b3a705f5a"))

	assert.False(t, store.Snapshot().MachineConnected())
	view := screen.View(table.Query{})
	assert.Len(t, view.Machines, 4)
}

func TestMachinesDeleteFailureKeepsConnection(t *testing.T) {
	two := backend.FixtureMachines()[:2]
	mux := http.NewServeMux()
	mux.HandleFunc("/machines", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(backend.MachinesResponse{Result: true, ExistingMachines: two})
	})
	mux.HandleFunc("/machines/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	store := loggedInStore()
	client := backend.NewClient(backend.Config{BaseURL: srv.URL})
	screen := NewMachines(client, store)

	screen.Load(context.Background())
	require.NoError(t, screen.Connect("67fcb31d408d1b1b3a705f5a"))

	err := screen.Delete(context.Background(), "67fcb31d408d1b1b3a705f5a")
	require.Error(t, err)

	st := store.Snapshot()
	assert.True(t, st.MachineConnected(), "a failed delete keeps the active machine context")
	assert.Equal(t, "maestro03", st.MachineName)

	view := screen.View(table.Query{})
	assert.Len(t, view.Machines, 2, "the machine stays in the list")
}

func TestMachinesAddRefetches(t *testing.T) {
	screen, _ := mockScreen()
	screen.Load(context.Background())

	created, err := screen.Add(context.Background(), backend.NewMachine{
		URLFor404API:            "  http://new.example  ",
		UserHomeDir:             "/home/nick",
		NginxStoragePathOptions: []string{"/etc/nginx/conf.d", "  ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://new.example", created.URLFor404API)
	assert.Equal(t, []string{"/etc/nginx/conf.d"}, created.NginxStoragePathOptions)

	view := screen.View(table.Query{})
	require.Len(t, view.Machines, 6)

	found := 0
	for _, m := range view.Machines {
		if m.URLFor404API == "http://new.example" {
			found++
		}
	}
	assert.Equal(t, 1, found, "exactly one new entry after the refetch")
}

func TestMachinesAddRequiresURL(t *testing.T) {
	screen, _ := mockScreen()
	_, err := screen.Add(context.Background(), backend.NewMachine{URLFor404API: "   "})
	require.Error(t, err)
	assert.Equal(t, "API URL is required", err.Error())
}

func TestMachinesActionFailureKeepsReadyItems(t *testing.T) {
	screen, _ := mockScreen()
	screen.Load(context.Background())

	err := screen.Delete(context.Background(), "not-there")
	require.Error(t, err)

	view := screen.View(table.Query{})
	assert.Equal(t, PhaseReady, view.Phase, "failed action must not revert to loading")
	assert.Len(t, view.Machines, 5)
}
