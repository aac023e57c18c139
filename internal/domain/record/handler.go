package record

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ehr/medrecord/internal/platform/fhir"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id", h.GetPatient)
	api.GET("/patients/:id/conditions", h.GetConditions)
	api.GET("/patients/:id/medications", h.GetMedications)
	api.GET("/patients/:id/allergies", h.GetAllergies)
	api.GET("/patients/:id/observations", h.GetObservations)
	api.GET("/patients/:id/vitals", h.GetVitals)
	api.GET("/patients/:id/procedures", h.GetProcedures)
	api.GET("/patients/:id/immunizations", h.GetImmunizations)
	api.GET("/patients/:id/diagnostic-reports", h.GetDiagnosticReports)
	api.GET("/patients/:id/care-plans", h.GetCarePlans)
	api.GET("/patients/:id/summary", h.GetPatientSummary)
	api.GET("/patients/:id/medical-data", h.GetAllMedicalData)
	api.GET("/patients/:id/recommendations", h.GetHealthRecommendations)
}

// respond wraps one category's narrative text in the uniform response shape.
func respond(c echo.Context, category, result string) error {
	return c.JSON(http.StatusOK, echo.Map{
		"patientId": fhir.NormalizePatientID(c.Param("id")),
		"category":  category,
		"result":    result,
	})
}

func (h *Handler) GetPatient(c echo.Context) error {
	return respond(c, "patient", h.svc.GetPatient(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetConditions(c echo.Context) error {
	return respond(c, "conditions", h.svc.GetConditions(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetMedications(c echo.Context) error {
	return respond(c, "medications", h.svc.GetMedications(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetAllergies(c echo.Context) error {
	return respond(c, "allergies", h.svc.GetAllergies(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetObservations(c echo.Context) error {
	count := 0
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "count must be a positive integer")
		}
		count = n
	}
	return respond(c, "observations", h.svc.GetObservations(c.Request().Context(), c.Param("id"), count))
}

func (h *Handler) GetVitals(c echo.Context) error {
	return respond(c, "vitals", h.svc.GetVitals(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetProcedures(c echo.Context) error {
	return respond(c, "procedures", h.svc.GetProcedures(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetImmunizations(c echo.Context) error {
	return respond(c, "immunizations", h.svc.GetImmunizations(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetDiagnosticReports(c echo.Context) error {
	return respond(c, "diagnosticReports", h.svc.GetDiagnosticReports(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetCarePlans(c echo.Context) error {
	return respond(c, "carePlans", h.svc.GetCarePlans(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetPatientSummary(c echo.Context) error {
	return respond(c, "summary", h.svc.GetPatientSummary(c.Request().Context(), c.Param("id")))
}

func (h *Handler) GetAllMedicalData(c echo.Context) error {
	data := h.svc.GetAllMedicalData(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, echo.Map{
		"patientId": fhir.NormalizePatientID(c.Param("id")),
		"data":      data,
		"order":     SummaryOrder,
	})
}

func (h *Handler) GetHealthRecommendations(c echo.Context) error {
	return respond(c, "recommendations", h.svc.GetHealthRecommendations(c.Request().Context(), c.Param("id")))
}
