package car

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vivekranpara25/UrbanDrive/model"
	cs "github.com/vivekranpara25/UrbanDrive/service/car"
)

type Controller struct {
	Svc      cs.Service
	V        *validator.Validate
	Log      *slog.Logger
	ImageDir string
}

// GET /v1/cars
func (h *Controller) List(c echo.Context) error {
	cars, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("list cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// GET /v1/cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	car, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if cs.Code(err) == cs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, car)
}

// POST /v1/admin/cars
func (h *Controller) Create(c echo.Context) error {
	req, err := h.bindCar(c)
	if err != nil {
		return err
	}

	car := toModel(req)
	if err := h.Svc.Create(c.Request().Context(), car); err != nil {
		if cs.Code(err) == cs.ErrBadInput {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid car payload"})
		}
		h.Log.Error("car create", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, car)
}

// PUT /v1/admin/cars/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	req, err := h.bindCar(c)
	if err != nil {
		return err
	}

	car := toModel(req)
	car.ID = id
	if err := h.Svc.Update(c.Request().Context(), car); err != nil {
		switch cs.Code(err) {
		case cs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case cs.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid car payload"})
		default:
			h.Log.Error("car update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, car)
}

// DELETE /v1/admin/cars/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if cs.Code(err) == cs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car delete", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "car deleted"})
}

// bindCar accepts JSON or multipart form; an uploaded image file wins over
// an image URL in the payload.
func (h *Controller) bindCar(c echo.Context) (*CarReq, error) {
	var req CarReq
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		path, err := h.saveImage(file)
		if err != nil {
			h.Log.Error("image upload", "err", err)
			return nil, echo.NewHTTPError(http.StatusInternalServerError, "image upload failed")
		}
		req.Image = path
	}

	if err := h.V.Struct(req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "validation error: "+err.Error())
	}
	return &req, nil
}

func (h *Controller) saveImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.ImageDir, 0o755); err != nil {
		return "", err
	}
	fname := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.ImageDir, fname))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/images/" + fname, nil
}

func toModel(req *CarReq) *model.Car {
	available := req.Quantity
	if req.Available != nil {
		available = *req.Available
	}
	return &model.Car{
		Name:         req.Name,
		Model:        req.Model,
		Image:        req.Image,
		PricePerHour: req.PricePerHour,
		Description:  req.Description,
		Quantity:     req.Quantity,
		Available:    available,
		Category:     req.Category,
		Transmission: req.Transmission,
		Seats:        req.Seats,
		Features:     req.Features,
	}
}
