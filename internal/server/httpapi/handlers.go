package httpapi

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/forumauth/internal/server/entities"
	"github.com/dmitrijs2005/forumauth/internal/server/services"
)

// UserRegistrar is the slice of UserService the HTTP layer depends on.
type UserRegistrar interface {
	AddUser(ctx context.Context, payload map[string]any) (*entities.RegisteredUser, error)
}

// Authenticator is the slice of AuthenticationService the HTTP layer depends on.
type Authenticator interface {
	Login(ctx context.Context, payload map[string]any) (*services.TokenPair, error)
	Refresh(ctx context.Context, payload map[string]any) (string, error)
	Logout(ctx context.Context, payload map[string]any) error
}

type UsersHandler struct {
	users UserRegistrar
}

func NewUsersHandler(users UserRegistrar) *UsersHandler {
	return &UsersHandler{users: users}
}

func (h *UsersHandler) PostUser(c *fiber.Ctx) error {
	addedUser, err := h.users.AddUser(c.Context(), parsePayload(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"addedUser": addedUser},
	})
}

type AuthenticationsHandler struct {
	auth Authenticator
}

func NewAuthenticationsHandler(auth Authenticator) *AuthenticationsHandler {
	return &AuthenticationsHandler{auth: auth}
}

func (h *AuthenticationsHandler) PostAuthentication(c *fiber.Ctx) error {
	tokens, err := h.auth.Login(c.Context(), parsePayload(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   tokens,
	})
}

func (h *AuthenticationsHandler) PutAuthentication(c *fiber.Ctx) error {
	accessToken, err := h.auth.Refresh(c.Context(), parsePayload(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"accessToken": accessToken},
	})
}

func (h *AuthenticationsHandler) DeleteAuthentication(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), parsePayload(c)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "berhasil menghapus token",
	})
}

// parsePayload decodes the request body into a generic map so the entity
// validators see the raw payload shape. A body that is not a JSON object
// yields an empty map, which the validators reject as missing properties.
func parsePayload(c *fiber.Ctx) map[string]any {
	payload := map[string]any{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return map[string]any{}
	}
	return payload
}
