package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant that owns projects.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a single monitored application within an organization.
// FirstEvent records when the project received its first event; it is
// set exactly once and never cleared.
type Project struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Slug           string     `json:"slug"`
	Name           string     `json:"name"`
	Platform       string     `json:"platform"`
	FirstEvent     *time.Time `json:"first_event,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Event is a captured error/message event belonging to a project.
// Sample events carry the same shape as real ones so dashboards and
// alert rules behave identically against them.
type Event struct {
	ID          string       `json:"id"` // 32-char lowercase hex
	ProjectID   uuid.UUID    `json:"project_id"`
	Platform    string       `json:"platform"`
	Message     string       `json:"message"`
	Level       string       `json:"level"`
	Culprit     string       `json:"culprit"`
	Environment string       `json:"environment"`
	Release     string       `json:"release"`
	Timestamp   time.Time    `json:"timestamp"`
	Sample      bool         `json:"sample"`
	User        *EventUser   `json:"user,omitempty"`
	Request     *HTTPContext `json:"request,omitempty"`
	Exception   *Exception   `json:"exception,omitempty"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs,omitempty"`
	Tags        Tags         `json:"tags,omitempty"`
}

// EventUser identifies the end user a sample event is attributed to.
type EventUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IPAddress string `json:"ip_address"`
}

// HTTPContext captures the request that produced the event.
type HTTPContext struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Exception is the error payload of an event.
type Exception struct {
	Type   string       `json:"type"`
	Value  string       `json:"value"`
	Module string       `json:"module,omitempty"`
	Frames []StackFrame `json:"frames,omitempty"`
}

// StackFrame is a single frame of an exception stack trace,
// ordered oldest call first.
type StackFrame struct {
	Function string `json:"function"`
	Module   string `json:"module"`
	Filename string `json:"filename"`
	LineNo   int    `json:"lineno"`
	InApp    bool   `json:"in_app"`
}

// Breadcrumb is a trail entry leading up to the event.
type Breadcrumb struct {
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
}

// Tags are indexed key/value pairs attached to an event.
type Tags map[string]string

// Event severity levels.
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelFatal   = "fatal"
)
