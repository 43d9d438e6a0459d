package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"ortho-app/config"
	"ortho-app/controllers/idgen"
	"ortho-app/database"
	"ortho-app/models"
	"ortho-app/routes"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires a Fiber app with all routes over an isolated
// in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	idgen.Init()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.SeedRoles(db)

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupCaseRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupInvoiceRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupDictionaryRoutes(app, db)
	routes.SetupUserRoutes(app, db)

	return app, db
}

// newTestUser creates a user holding the given role codes and returns a
// valid bearer token for it.
func newTestUser(t *testing.T, db *gorm.DB, username string, roleCodes ...string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Password: string(hashed),
		Name:     username,
		Email:    username + "@ortho.local",
	}
	require.NoError(t, db.Create(&user).Error)

	if len(roleCodes) > 0 {
		var roles []models.Role
		require.NoError(t, db.Where("code IN ?", roleCodes).Find(&roles).Error)
		require.NoError(t, db.Model(&user).Association("Roles").Replace(roles))
	}

	sessionID := uuid.New().String()
	session := models.UserSession{
		UserID:         user.ID,
		SessionID:      sessionID,
		IsActive:       true,
		ExpiresAt:      time.Now().Add(time.Hour),
		LastActivityAt: time.Now(),
	}
	require.NoError(t, db.Create(&session).Error)

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)

	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
