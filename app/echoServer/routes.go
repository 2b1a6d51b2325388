package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/analytics"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/auth"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/booking"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/car"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/controller/user"
	"github.com/vivekranpara25/UrbanDrive/app/echoServer/jwtx"
)

type C struct {
	Auth      *auth.Controller
	Car       *car.Controller
	Booking   *booking.Controller
	User      *user.Controller
	Analytics *analytics.Controller

	JWTSecret string
	ImageDir  string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/cars", c.Car.List)
	pub.GET("/cars/:id", c.Car.Detail)

	// Car images uploaded through the admin console
	e.Static("/images", c.ImageDir)

	jwtMW := echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	})

	// Authenticated users
	authed := e.Group("/v1", jwtMW, jwtx.ExtractUser())
	authed.POST("/bookings", c.Booking.Create)
	authed.GET("/bookings/my", c.Booking.My)
	authed.GET("/bookings/:id", c.Booking.Detail)

	// Admin console
	admin := e.Group("/v1/admin", jwtMW, jwtx.ExtractUser(), AdminOnly())
	admin.POST("/cars", c.Car.Create)
	admin.PUT("/cars/:id", c.Car.Update)
	admin.DELETE("/cars/:id", c.Car.Delete)

	admin.GET("/bookings", c.Booking.ListAll)
	admin.PUT("/bookings/:id", c.Booking.UpdateStatus)

	admin.GET("/users", c.User.List)
	admin.PUT("/users/:id", c.User.Update)
	admin.DELETE("/users/:id", c.User.Delete)

	admin.GET("/analytics", c.Analytics.Dashboard)
}
