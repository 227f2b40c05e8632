package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yukikurage/client-task-api/internal/constants"
	"github.com/yukikurage/client-task-api/internal/repository"
	"github.com/yukikurage/client-task-api/internal/utils"
)

// ClientProgress summarises task completion for one client.
type ClientProgress struct {
	ClientID  string
	Name      string
	Total     int64
	Completed int64
	Percent   int
}

// Stats summarises task completion across all clients.
type Stats struct {
	TotalClients   int
	TotalTasks     int64
	CompletedTasks int64
	PendingTasks   int64
	CompletionRate int
	Clients        []ClientProgress
}

// StatsService computes dashboard progress figures.
type StatsService struct {
	store repository.Store
}

// NewStatsService creates a new StatsService
func NewStatsService(store repository.Store) *StatsService {
	return &StatsService{store: store}
}

// Summary counts tasks per client, most complete clients first. Only status "completed" counts as done;
// every other status is pending.
func (s *StatsService) Summary(ctx context.Context) (*Stats, error) {
	store := s.store.WithContext(ctx)

	clients, err := store.Clients().List(utils.FullList())
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	counts, err := store.Tasks().CountByClientAndStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	type tally struct{ total, completed int64 }
	byClient := make(map[string]*tally, len(clients))
	for _, row := range counts {
		t, ok := byClient[row.ClientID]
		if !ok {
			t = &tally{}
			byClient[row.ClientID] = t
		}
		t.total += row.Count
		if row.Status == constants.TaskStatusCompleted {
			t.completed += row.Count
		}
	}

	stats := &Stats{
		TotalClients: len(clients),
		Clients:      make([]ClientProgress, 0, len(clients)),
	}
	for _, client := range clients {
		progress := ClientProgress{ClientID: client.ID, Name: client.Name}
		if t, ok := byClient[client.ID]; ok {
			progress.Total = t.total
			progress.Completed = t.completed
			progress.Percent = percent(t.completed, t.total)
		}
		stats.TotalTasks += progress.Total
		stats.CompletedTasks += progress.Completed
		stats.Clients = append(stats.Clients, progress)
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	stats.CompletionRate = percent(stats.CompletedTasks, stats.TotalTasks)

	sort.SliceStable(stats.Clients, func(i, j int) bool {
		return stats.Clients[i].Percent > stats.Clients[j].Percent
	})

	return stats, nil
}

// percent rounds half up to a whole percentage.
func percent(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int((part*200 + total) / (total * 2))
}
