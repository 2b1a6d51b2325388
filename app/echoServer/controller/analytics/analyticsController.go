package analytics

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	as "github.com/vivekranpara25/UrbanDrive/service/analytics"
)

type Controller struct {
	Svc as.Service
	Log *slog.Logger
}

// GET /v1/admin/analytics
func (h *Controller) Dashboard(c echo.Context) error {
	d, err := h.Svc.Dashboard(c.Request().Context())
	if err != nil {
		h.Log.Error("analytics", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, d)
}
