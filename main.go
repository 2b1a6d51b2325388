// Package main UrbanDrive API.
//
// @title           UrbanDrive API
// @version         1.0
// @description     Car rental service (catalog, bookings, users, admin console).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vivekranpara25/UrbanDrive/app/echoServer"
	analyticsctrl "github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/analytics"
	authctrl "github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/auth"
	bookingctrl "github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/booking"
	carctrl "github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/car"
	userctrl "github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/user"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/validation"
	"github.com/vivekranpara25/UrbanDrive/config"
	analyticsrepo "github.com/vivekranpara25/UrbanDrive/repository/analytics"
	bookingrepo "github.com/vivekranpara25/UrbanDrive/repository/booking"
	carrepo "github.com/vivekranpara25/UrbanDrive/repository/car"
	userrepo "github.com/vivekranpara25/UrbanDrive/repository/user"
	analyticssvc "github.com/vivekranpara25/UrbanDrive/service/analytics"
	authsvc "github.com/vivekranpara25/UrbanDrive/service/auth"
	bookingsvc "github.com/vivekranpara25/UrbanDrive/service/booking"
	carsvc "github.com/vivekranpara25/UrbanDrive/service/car"
	usersvc "github.com/vivekranpara25/UrbanDrive/service/user"
	"github.com/vivekranpara25/UrbanDrive/util/database"
)

const defaultAdminEmail = "admin@rentcar.com"

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	cr := carrepo.New(db)
	br := bookingrepo.New(db)
	anr := analyticsrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cs := carsvc.New(cr)
	bs := bookingsvc.New(database.NewTxRunner(db), br, cr)
	us := usersvc.New(ur)
	ans := analyticssvc.New(anr)

	if err := us.EnsureDefaultAdmin(ctx, defaultAdminEmail, getenvDefault("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Error("admin seed failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	carC := &carctrl.Controller{Svc: cs, V: v, Log: log, ImageDir: cfg.ImageDir}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	analyticsC := &analyticsctrl.Controller{Svc: ans, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Car:       carC,
		Booking:   bookingC,
		User:      userC,
		Analytics: analyticsC,

		JWTSecret: cfg.JWTSecret,
		ImageDir:  cfg.ImageDir,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port)

	e.Logger.Fatal(e.Start(":" + port))
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
