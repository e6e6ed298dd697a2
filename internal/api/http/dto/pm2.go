package dto

import "github.com/costa-rica/The404-Web/internal/backend"

// AppsPage is the view-model of the PM2 apps screen.
type AppsPage struct {
	Phase       string           `json:"phase"`
	Error       string           `json:"error,omitempty"`
	Apps        []backend.Pm2App `json:"apps"`
	Total       int              `json:"total"`
	NoMatches   bool             `json:"noMatches"`
	MachineName string           `json:"machineName,omitempty"`
}

type AppLogsResponse struct {
	Success bool     `json:"success"`
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HomePage is the authenticated landing view: the session projection plus
// the active machine context.
type HomePage struct {
	Username                string   `json:"username"`
	Email                   string   `json:"email"`
	IsAdmin                 bool     `json:"isAdmin"`
	MachineName             string   `json:"machineName,omitempty"`
	URLFor404API            string   `json:"urlFor404Api,omitempty"`
	NginxStoragePathOptions []string `json:"nginxStoragePathOptions,omitempty"`
}
