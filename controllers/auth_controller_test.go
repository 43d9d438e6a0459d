package controllers_test

import (
	"net/http"
	"testing"

	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_Login(t *testing.T) {
	t.Run("should return a token and the user's roles", func(t *testing.T) {
		app, db := newTestApp(t)
		newTestUser(t, db, "registrar", models.RoleRegistry)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"username": "registrar",
			"password": "secret123",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.NotEmpty(t, data["token"])
		assert.Equal(t, "registrar", data["username"])
		assert.Contains(t, data["roles"], models.RoleRegistry)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		app, db := newTestApp(t)
		newTestUser(t, db, "registrar", models.RoleRegistry)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"username": "registrar",
			"password": "wrong",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("should reject an unknown username", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"username": "ghost",
			"password": "secret123",
		})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthController_Logout(t *testing.T) {
	t.Run("should deactivate the session", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		resp := doJSON(t, app, http.MethodGet, "/api/v1/auth/logout", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		// The same token no longer opens protected routes.
		resp = doJSON(t, app, http.MethodGet, "/api/v1/cases/", token, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
