package dto

import "github.com/yukikurage/client-task-api/internal/services"

// ClientProgressDTO is one client's completion figures
type ClientProgressDTO struct {
	ClientID   string `json:"client_id"`
	Name       string `json:"name"`
	Total      int64  `json:"total"`
	Completed  int64  `json:"completed"`
	Percentage int    `json:"percentage"`
}

// StatsDTO summarises task completion across clients
type StatsDTO struct {
	TotalClients   int                 `json:"total_clients"`
	TotalTasks     int64               `json:"total_tasks"`
	CompletedTasks int64               `json:"completed_tasks"`
	PendingTasks   int64               `json:"pending_tasks"`
	CompletionRate int                 `json:"completion_rate"`
	Clients        []ClientProgressDTO `json:"clients"`
}

// ToStatsDTO converts service stats to StatsDTO
func ToStatsDTO(stats services.Stats) StatsDTO {
	clients := make([]ClientProgressDTO, len(stats.Clients))
	for i, p := range stats.Clients {
		clients[i] = ClientProgressDTO{
			ClientID:   p.ClientID,
			Name:       p.Name,
			Total:      p.Total,
			Completed:  p.Completed,
			Percentage: p.Percent,
		}
	}

	return StatsDTO{
		TotalClients:   stats.TotalClients,
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		PendingTasks:   stats.PendingTasks,
		CompletionRate: stats.CompletionRate,
		Clients:        clients,
	}
}
