package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// maxHeaderValueSize is the maximum allowed size for any single header value.
const maxHeaderValueSize = 8192 // 8KB

// scriptPatterns matches script injection attempts in query values. Search
// terms and patient ids are forwarded to the upstream FHIR server, so
// anything that looks like markup is rejected outright.
var scriptPatterns = regexp.MustCompile(`(?i)(<script|javascript\s*:|on\w+\s*=)`)

// Sanitize returns middleware that validates incoming requests before they
// reach a handler. It rejects path traversal, null byte and script injection
// in the path, headers and query parameters with a 400 Bad Request carrying
// a FHIR OperationOutcome body. Suspicious but non-blocking input is logged.
func Sanitize(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path
			rawPath := req.URL.RawPath
			if rawPath == "" {
				rawPath = path
			}

			if containsPathTraversal(path) || containsPathTraversal(rawPath) {
				return rejectRequest(c, "Path traversal detected")
			}
			if containsNullByte(path) || containsNullByte(rawPath) {
				return rejectRequest(c, "Null byte injection detected")
			}

			for name, values := range req.Header {
				for _, v := range values {
					if len(v) > maxHeaderValueSize {
						return rejectRequest(c, "Header value exceeds maximum size: "+name)
					}
					if strings.ContainsAny(v, "\r\n") {
						return rejectRequest(c, "Header injection detected: "+name)
					}
				}
			}

			for key, values := range req.URL.Query() {
				for _, v := range values {
					if containsNullByte(v) || containsNullByte(key) {
						return rejectRequest(c, "Null byte injection detected in query parameter")
					}
					if scriptPatterns.MatchString(v) || scriptPatterns.MatchString(key) {
						logger.Warn().
							Str("param", key).
							Str("path", path).
							Str("remote_ip", c.RealIP()).
							Msg("script injection pattern in query parameter")
						return rejectRequest(c, "Script injection detected in query parameter")
					}
				}
			}

			return next(c)
		}
	}
}

// containsPathTraversal checks for traversal sequences in raw and
// percent-encoded forms.
func containsPathTraversal(s string) bool {
	if strings.Contains(s, "..") {
		return true
	}
	lower := strings.ToLower(s)
	return strings.Contains(lower, "%2e%2e") || strings.Contains(lower, "%252e")
}

// containsNullByte checks for null bytes in raw and percent-encoded forms.
func containsNullByte(s string) bool {
	if strings.ContainsRune(s, '\x00') {
		return true
	}
	return strings.Contains(strings.ToLower(s), "%00")
}

func rejectRequest(c echo.Context, diagnostics string) error {
	return writeOutcome(c, http.StatusBadRequest, "invalid", diagnostics)
}

// SanitizeString strips null bytes and control characters (except \n, \r and
// \t) from a value and trims surrounding whitespace. Handlers use it on free
// text query parameters before passing them upstream.
func SanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r == '\x00' {
			continue
		}
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
