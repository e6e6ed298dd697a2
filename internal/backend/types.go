package backend

// Machine is a registered remote server, owned by the the-404 backend.
// Field names mirror the backend's JSON documents.
type Machine struct {
	ID                      string   `json:"_id"`
	MachineName             string   `json:"machineName"`
	URLFor404API            string   `json:"urlFor404Api"`
	LocalIPAddress          string   `json:"localIpAddress"`
	UserHomeDir             string   `json:"userHomeDir,omitempty"`
	NginxStoragePathOptions []string `json:"nginxStoragePathOptions"`
	DateCreated             string   `json:"dateCreated"`
	DateLastModified        string   `json:"dateLastModified"`
	Revision                int      `json:"__v"`
}

// NewMachine is the payload for registering a machine.
type NewMachine struct {
	URLFor404API            string   `json:"urlFor404Api"`
	UserHomeDir             string   `json:"userHomeDir,omitempty"`
	NginxStoragePathOptions []string `json:"nginxStoragePathOptions"`
}

// MachinesResponse is the backend's machine-collection envelope.
type MachinesResponse struct {
	Result           bool      `json:"result"`
	ExistingMachines []Machine `json:"existingMachines"`
}

// Pm2App is a PM2-managed process on a connected machine. Port is nil
// when the app exposes none; Memory is bytes, Uptime milliseconds.
type Pm2App struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Port     *int    `json:"port"`
	CPU      float64 `json:"cpu"`
	Memory   int64   `json:"memory"`
	Uptime   int64   `json:"uptime"`
	Restarts int     `json:"restarts"`
}

// Online reports whether the app is in PM2's "online" state. Every other
// status string is backend-defined (stopped, errored, ...).
func (a Pm2App) Online() bool { return a.Status == StatusOnline }

const StatusOnline = "online"

// AppsResponse is the machine-scoped PM2 collection envelope.
type AppsResponse struct {
	Result bool     `json:"result"`
	Apps   []Pm2App `json:"apps"`
}

// AppLogsResponse carries the recent log lines of one PM2 app.
type AppLogsResponse struct {
	Result bool     `json:"result"`
	Lines  []string `json:"lines"`
}

// LoginUser is the user object inside a successful login response.
type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse is the backend's answer to POST /users/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}
