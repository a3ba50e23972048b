package logging

import "log/slog"

// Common field names for consistent logging across commands.
const (
	FieldOrg      = "org"
	FieldProject  = "project"
	FieldPlatform = "platform"
	FieldEventID  = "event_id"
	FieldSubject  = "subject"
	FieldError    = "error"
)

// Org returns a slog attribute for an organization slug.
func Org(slug string) slog.Attr {
	return slog.String(FieldOrg, slug)
}

// Project returns a slog attribute for a project slug.
func Project(slug string) slog.Attr {
	return slog.String(FieldProject, slug)
}

// Platform returns a slog attribute for a platform identifier.
func Platform(platform string) slog.Attr {
	return slog.String(FieldPlatform, platform)
}

// EventID returns a slog attribute for an event ID.
func EventID(id string) slog.Attr {
	return slog.String(FieldEventID, id)
}

// Subject returns a slog attribute for a message subject.
func Subject(subject string) slog.Attr {
	return slog.String(FieldSubject, subject)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
