package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vivekranpara25/UrbanDrive/app/echoServer/jwtx"
	"github.com/vivekranpara25/UrbanDrive/model"
	bs "github.com/vivekranpara25/UrbanDrive/service/booking"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create a booking
// @Summary      Book a car
// @Description  Reserves one unit of the car and creates a pending booking; the total is computed server-side
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookingReq  true  "Booking payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any "invalid interval"
// @Failure      404  {object}  map[string]any "car not found"
// @Failure      409  {object}  map[string]any "car not available"
// @Security     BearerAuth
// @Router       /v1/bookings [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid := jwtx.UserID(c)

	b, err := h.Svc.Create(c.Request().Context(), uid, bs.CreateReq{
		CarID:         req.CarID,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		NeedDriver:    req.NeedDriver,
		DriverContact: req.DriverContact,
	})
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case bs.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "car is not available for booking"})
		case bs.ErrInvalidInterval:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end time must be after start time"})
		default:
			h.Log.Error("booking create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, b)
}

// GET /v1/bookings/my
func (h *Controller) My(c echo.Context) error {
	uid := jwtx.UserID(c)
	rows, err := h.Svc.ListByUser(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("my bookings", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/bookings/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	d, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if bs.Code(err) == bs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		}
		h.Log.Error("booking detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	// Regular users may only read their own bookings.
	if jwtx.Role(c) != string(model.RoleAdmin) && d.UserID != jwtx.UserID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	return c.JSON(http.StatusOK, d)
}

// GET /v1/admin/bookings
func (h *Controller) ListAll(c echo.Context) error {
	rows, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("list bookings", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// Update booking status
// @Summary      Update booking status
// @Description  Moves a booking through its lifecycle; cancelling frees one unit of the car
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id       path  int              true  "Booking id"
// @Param        payload  body  UpdateStatusReq  true  "New status"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any "booking not found"
// @Failure      409  {object}  map[string]any "illegal transition"
// @Security     BearerAuth
// @Router       /v1/admin/bookings/{id} [put]
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	b, err := h.Svc.UpdateStatus(c.Request().Context(), id, model.BookingStatus(req.Status))
	if err != nil {
		switch bs.Code(err) {
		case bs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case bs.ErrBadTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "status change not allowed"})
		case bs.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
		default:
			h.Log.Error("booking status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, b)
}
