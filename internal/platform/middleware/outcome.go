package middleware

import "github.com/labstack/echo/v4"

// writeOutcome writes a FHIR OperationOutcome response with a single issue.
// It is a no-op when the response is already committed, which can happen
// when a handler timed out after a partial write.
func writeOutcome(c echo.Context, status int, code, diagnostics string) error {
	if c.Response().Committed {
		return nil
	}
	return c.JSON(status, map[string]interface{}{
		"resourceType": "OperationOutcome",
		"issue": []map[string]interface{}{
			{
				"severity":    "error",
				"code":        code,
				"diagnostics": diagnostics,
			},
		},
	})
}
