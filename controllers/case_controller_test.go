package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCasePayload() fiber.Map {
	return fiber.Map{
		"pin":                  "12345678901234",
		"last_name":            "Иванов",
		"first_name":           "Иван",
		"middle_name":          "Иванович",
		"sex":                  "M",
		"birth_date":           "1980-03-02",
		"address_registration": "г. Бишкек, ул. Ленина 1",
		"disability_group":     "II",
	}
}

func TestCaseRoutes_RoleAccess(t *testing.T) {
	t.Run("should reject a request without a token", func(t *testing.T) {
		app, _ := newTestApp(t)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", "", validCasePayload())
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("should reject a user without a matching role", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "storekeeper", models.RoleWarehouse)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, validCasePayload())
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("should reject a user with no roles at all", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "nobody")

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, validCasePayload())
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("should allow a REGISTRY user", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, validCasePayload())
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("should allow an ADMIN regardless of other roles", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "boss", models.RoleAdmin)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, validCasePayload())
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestCaseController_CreateCase(t *testing.T) {
	t.Run("should assign a year-scoped case number", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, validCasePayload())
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, fmt.Sprintf("%d-0001", time.Now().Year()), data["number"])
	})

	t.Run("should reject an invalid payload", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		payload := validCasePayload()
		payload["sex"] = "X"
		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("should reject a malformed birth date", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		payload := validCasePayload()
		payload["birth_date"] = "02.03.1980"
		resp := doJSON(t, app, http.MethodPost, "/api/v1/cases/", token, payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCaseController_UpdateCase(t *testing.T) {
	t.Run("should persist cleared optional fields", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "registrar", models.RoleRegistry)

		personalCase := models.PersonalCase{
			Number:     fmt.Sprintf("%d-0001", time.Now().Year()),
			Pin:        "12345678901234",
			LastName:   "Иванов",
			FirstName:  "Иван",
			MiddleName: "Иванович",
			Sex:        "M",
			BirthDate:  "1980-03-02",
			Notes:      "old notes",
		}
		require.NoError(t, db.Create(&personalCase).Error)

		payload := validCasePayload()
		payload["middle_name"] = ""
		delete(payload, "notes")
		resp := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/v1/cases/%d", personalCase.ID), token, payload)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var updated models.PersonalCase
		require.NoError(t, db.First(&updated, personalCase.ID).Error)
		assert.Empty(t, updated.MiddleName)
		assert.Empty(t, updated.Notes)
		assert.Equal(t, personalCase.Number, updated.Number)
	})
}

func TestCaseController_GetCaseByID(t *testing.T) {
	t.Run("should return the case with full name and age", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "doctor", models.RoleMed)

		personalCase := models.PersonalCase{
			Number:    fmt.Sprintf("%d-0001", time.Now().Year()),
			Pin:       "12345678901234",
			LastName:  "Иванов",
			FirstName: "Иван",
			Sex:       "M",
			BirthDate: "1980-03-02",
		}
		require.NoError(t, db.Create(&personalCase).Error)

		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/cases/%d", personalCase.ID), token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Иванов Иван", data["full_name"])
		assert.NotZero(t, data["age"])
	})

	t.Run("should return 404 for an unknown case", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "doctor", models.RoleMed)

		resp := doJSON(t, app, http.MethodGet, "/api/v1/cases/404", token, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
