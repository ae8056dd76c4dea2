// Package httpapi exposes the use cases over HTTP. Routes, response
// envelopes, and status codes form the stable external contract of the
// service.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dmitrijs2005/forumauth/internal/logging"
	"github.com/dmitrijs2005/forumauth/internal/server/exceptions"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	app    *fiber.App
	addr   string
	logger logging.Logger
}

func NewServer(addr string, logger logging.Logger, users UserRegistrar, auth Authenticator) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler:          newErrorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger))

	registerRoutes(app, users, auth)

	// JSON 404 for anything the router did not match.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "fail",
			"message": "halaman tidak ditemukan",
		})
	})

	return &Server{app: app, addr: addr, logger: logger}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.addr)
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down http server")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}

func registerRoutes(app *fiber.App, users UserRegistrar, auth Authenticator) {
	usersHandler := NewUsersHandler(users)
	authHandler := NewAuthenticationsHandler(auth)

	app.Post("/users", usersHandler.PostUser)
	app.Post("/authentications", authHandler.PostAuthentication)
	app.Put("/authentications", authHandler.PutAuthentication)
	app.Delete("/authentications", authHandler.DeleteAuthentication)
}

// newErrorHandler translates use-case errors into the response envelope.
// Named domain errors become localized invariant errors; ClientErrors keep
// their status; anything else is the generic server fault, with the detail
// logged but never returned.
func newErrorHandler(logger logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		err = exceptions.Translate(err)

		var clientErr *exceptions.ClientError
		if errors.As(err, &clientErr) {
			return c.Status(clientErr.StatusCode).JSON(fiber.Map{
				"status":  "fail",
				"message": clientErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"status":  "fail",
				"message": fiberErr.Message,
			})
		}

		logger.Error(c.Context(), "unhandled error", "method", c.Method(), "path", c.Path(), "error", err.Error())

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "terjadi kegagalan pada server kami",
		})
	}
}

func requestLogger(logger logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info(c.Context(), "request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}
