package search

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/medrecord/internal/platform/middleware"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.SearchPatients)
}

func (h *Handler) SearchPatients(c echo.Context) error {
	name := middleware.SanitizeString(c.QueryParam("name"))
	identifier := middleware.SanitizeString(c.QueryParam("identifier"))
	result := h.svc.SearchPatients(c.Request().Context(), name, identifier)
	return c.JSON(http.StatusOK, echo.Map{
		"name":       name,
		"identifier": identifier,
		"result":     result,
	})
}
