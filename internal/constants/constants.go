package constants

import "time"

// Context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUser      = "user"
	ContextKeyRequestID = "request_id"
)

// Authentication
const (
	BearerScheme    = "Bearer"
	TokenType       = "bearer"
	DefaultTokenTTL = 7 * 24 * time.Hour
	DefaultIssuer   = "client-task-api"
)

// Task status values. Status is stored as an open string; these are the
// values the API itself produces.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task ordering
const (
	FirstTaskOrder         = 0
	MaxOrderAssignAttempts = 3
)

// Listing and pagination
const (
	MaxListSize     = 1000
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SeedTaskTitles is the onboarding checklist created for every new client.
// The index of each title is the seeded task's order.
var SeedTaskTitles = []string{
	"Create website",
	"Check mobile view",
	"Create Razorpay account",
	"Set up domain",
	"Configure email",
	"Add payment gateway",
	"Test functionality",
	"Deploy to production",
	"Set up analytics",
	"Create documentation",
	"Client training",
}
