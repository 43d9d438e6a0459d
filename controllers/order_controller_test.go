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
	"gorm.io/gorm"
)

func seedTestCase(t *testing.T, db *gorm.DB) models.PersonalCase {
	t.Helper()
	personalCase := models.PersonalCase{
		Number:    fmt.Sprintf("%d-0001", time.Now().Year()),
		Pin:       "12345678901234",
		LastName:  "Иванов",
		FirstName: "Иван",
		Sex:       "M",
		BirthDate: "1980-03-02",
	}
	require.NoError(t, db.Create(&personalCase).Error)
	return personalCase
}

func seedTestOrder(t *testing.T, db *gorm.DB, caseID uint, status string) models.Order {
	t.Helper()
	order := models.Order{
		PersonalCaseID: caseID,
		OrderNumber:    fmt.Sprintf("ORD-%d-0001", time.Now().Year()),
		Type:           models.OrderTypeProsthesis,
		Workshop:       models.WorkshopProsthesis,
		Urgency:        models.UrgencyNormal,
		PaymentType:    models.PaymentFree,
		Status:         status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestOrderController_CreateOrder(t *testing.T) {
	t.Run("should create an order with a generated number", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)
		personalCase := seedTestCase(t, db)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/orders/", token, fiber.Map{
			"personal_case_id": personalCase.ID,
			"type":             models.OrderTypeProsthesis,
			"workshop":         models.WorkshopProsthesis,
			"item_name":        "Below-knee prosthesis",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, fmt.Sprintf("ORD-%d-0001", time.Now().Year()), data["order_number"])
		assert.Equal(t, models.StatusDraft, data["status"])
	})

	t.Run("should return 404 when the case does not exist", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)

		resp := doJSON(t, app, http.MethodPost, "/api/v1/orders/", token, fiber.Map{
			"personal_case_id": 404,
			"type":             models.OrderTypeProsthesis,
			"workshop":         models.WorkshopProsthesis,
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestOrderController_UpdateOrder(t *testing.T) {
	t.Run("should persist a cleared primary flag", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)
		personalCase := seedTestCase(t, db)
		order := seedTestOrder(t, db, personalCase.ID, models.StatusDraft)
		require.NoError(t, db.Model(&order).UpdateColumn("master_name", "Сидоров").Error)

		resp := doJSON(t, app, http.MethodPut,
			fmt.Sprintf("/api/v1/orders/%d", order.ID), token, fiber.Map{
				"personal_case_id": personalCase.ID,
				"type":             models.OrderTypeProsthesis,
				"workshop":         models.WorkshopProsthesis,
				"primary_flag":     false,
			})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var updated models.Order
		require.NoError(t, db.First(&updated, order.ID).Error)
		assert.False(t, updated.PrimaryFlag)
		assert.Empty(t, updated.MasterName)
		assert.Equal(t, order.OrderNumber, updated.OrderNumber)
		assert.Equal(t, models.StatusDraft, updated.Status)
	})
}

func TestOrderController_UpdateOrderStatus(t *testing.T) {
	t.Run("should apply a legal transition", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)
		personalCase := seedTestCase(t, db)
		order := seedTestOrder(t, db, personalCase.ID, models.StatusDraft)

		resp := doJSON(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/orders/%d/status", order.ID), token,
			fiber.Map{"status": models.StatusInWork})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var updated models.Order
		require.NoError(t, db.First(&updated, order.ID).Error)
		assert.Equal(t, models.StatusInWork, updated.Status)
	})

	t.Run("should return 409 on an illegal transition", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)
		personalCase := seedTestCase(t, db)
		order := seedTestOrder(t, db, personalCase.ID, models.StatusDraft)

		resp := doJSON(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/orders/%d/status", order.ID), token,
			fiber.Map{"status": models.StatusIssued})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("should return 400 on an unknown status", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "master", models.RoleWorkshop)
		personalCase := seedTestCase(t, db)
		order := seedTestOrder(t, db, personalCase.ID, models.StatusDraft)

		resp := doJSON(t, app, http.MethodPatch,
			fmt.Sprintf("/api/v1/orders/%d/status", order.ID), token,
			fiber.Map{"status": "SHIPPED"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestOrderController_GetAllOrders(t *testing.T) {
	t.Run("should filter by status", func(t *testing.T) {
		app, db := newTestApp(t)
		_, token := newTestUser(t, db, "doctor", models.RoleMed)
		personalCase := seedTestCase(t, db)
		seedTestOrder(t, db, personalCase.ID, models.StatusDraft)

		other := models.Order{
			PersonalCaseID: personalCase.ID,
			OrderNumber:    fmt.Sprintf("ORD-%d-0002", time.Now().Year()),
			Type:           models.OrderTypeShoes,
			Workshop:       models.WorkshopShoes,
			Status:         models.StatusInWork,
		}
		require.NoError(t, db.Create(&other).Error)

		resp := doJSON(t, app, http.MethodGet, "/api/v1/orders/?status=IN_WORK", token, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.EqualValues(t, 1, body["total"])
		rows := body["data"].([]interface{})
		row := rows[0].(map[string]interface{})
		assert.Equal(t, "Иванов Иван", row["patient_name"])
	})
}
