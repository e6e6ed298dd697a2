package dto

import "github.com/costa-rica/The404-Web/internal/backend"

type AddMachineRequest struct {
	URLFor404API            string   `json:"urlFor404Api" binding:"required"`
	UserHomeDir             string   `json:"userHomeDir"`
	NginxStoragePathOptions []string `json:"nginxStoragePathOptions"`
}

// MachinesPage is the view-model of the machines screen. Phase is
// loading/error/ready; Total is the unfiltered collection size so an
// empty Machines with Total > 0 renders the no-results placeholder
// rather than the empty-collection one.
type MachinesPage struct {
	Phase            string            `json:"phase"`
	Error            string            `json:"error,omitempty"`
	Machines         []backend.Machine `json:"machines"`
	Total            int               `json:"total"`
	NoMatches        bool              `json:"noMatches"`
	ConnectedMachine string            `json:"connectedMachine,omitempty"`
}

type AddMachineResponse struct {
	Success bool            `json:"success"`
	Machine backend.Machine `json:"machine"`
}

type ConnectResponse struct {
	Success                 bool     `json:"success"`
	MachineName             string   `json:"machineName"`
	URLFor404API            string   `json:"urlFor404Api"`
	NginxStoragePathOptions []string `json:"nginxStoragePathOptions"`
}
