package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clienttasks_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clienttasks_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clienttasks_auth_attempts_total",
		Help: "Registration and login attempts by result",
	}, []string{"operation", "result"})

	clientsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clienttasks_clients_created_total",
		Help: "Number of clients created",
	})

	tasksSeeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clienttasks_tasks_seeded_total",
		Help: "Number of onboarding tasks created by client seeding",
	})

	cascadeDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clienttasks_cascade_deleted_total",
		Help: "Dependent records removed by cascading deletes",
	}, []string{"entity"})

	orderConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clienttasks_task_order_conflicts_total",
		Help: "Task creations retried because another writer took the same order",
	})

	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clienttasks_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveAuthAttempt counts a register or login attempt.
func ObserveAuthAttempt(operation, result string) {
	authAttempts.WithLabelValues(operation, result).Inc()
}

// ObserveClientCreated counts a created client and its seeded tasks.
func ObserveClientCreated(seededTasks int) {
	clientsCreated.Inc()
	tasksSeeded.Add(float64(seededTasks))
}

// ObserveCascade adds the number of dependent records removed.
func ObserveCascade(entity string, count int64) {
	if count <= 0 {
		return
	}
	cascadeDeleted.WithLabelValues(entity).Add(float64(count))
}

// ObserveOrderConflict counts a retried task creation.
func ObserveOrderConflict() {
	orderConflicts.Inc()
}

// ObserveRateLimited counts a rejected request.
func ObserveRateLimited(route string) {
	rateLimited.WithLabelValues(route).Inc()
}
