package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// AuditEntry captures one read of patient data: who asked, which patient,
// from where, and how the request ended.
type AuditEntry struct {
	Subject    string
	PatientID  string
	Path       string
	Method     string
	IPAddress  string
	UserAgent  string
	RequestID  string
	StatusCode int
	Timestamp  time.Time
}

// AuditRecorder persists audit entries. The middleware falls back to
// structured logging when no recorder is given, so tests can assert on
// entries without a storage backend.
type AuditRecorder interface {
	RecordAccess(entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(entry AuditEntry) error {
	return f(entry)
}

// Audit returns middleware that writes an access trail for every request
// under /api/v1/. Patient record reads are PHI access and must be traceable
// even in development.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/v1/") {
				return next(c)
			}

			// Run the handler first so the entry sees the final status.
			err := next(c)

			entry := AuditEntry{
				Subject:    subjectFromContext(c),
				PatientID:  auditPatientID(c),
				Path:       req.URL.Path,
				Method:     req.Method,
				IPAddress:  c.RealIP(),
				UserAgent:  req.UserAgent(),
				StatusCode: c.Response().Status,
				Timestamp:  time.Now().UTC(),
			}
			if rid, ok := c.Get("request_id").(string); ok {
				entry.RequestID = rid
			}

			if len(recorders) > 0 && recorders[0] != nil {
				if recErr := recorders[0].RecordAccess(entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			logger.Info().
				Str("type", "phi_access").
				Str("request_id", entry.RequestID).
				Str("subject", entry.Subject).
				Str("patient_id", entry.PatientID).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Str("remote_ip", entry.IPAddress).
				Int("status", entry.StatusCode).
				Msg("audit")

			return err
		}
	}
}

func subjectFromContext(c echo.Context) string {
	if sub, ok := c.Get("auth_subject").(string); ok {
		return sub
	}
	return "anonymous"
}

// auditPatientID pulls the patient id out of /api/v1/patients/<id>/... paths
// or the ?patient= query parameter.
func auditPatientID(c echo.Context) string {
	path := c.Request().URL.Path
	if rest, ok := strings.CutPrefix(path, "/api/v1/patients/"); ok {
		if id, _, _ := strings.Cut(rest, "/"); id != "" {
			return id
		}
	}
	return c.QueryParam("patient")
}
