package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizdesk/bizdesk-api/db"
	"github.com/bizdesk/bizdesk-api/models"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{}, &models.Role{}, &models.Permission{},
	))
	return database
}

func signToken(t *testing.T, userID uint, roleName string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":   float64(userID),
		"role": roleName,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("solid_secret_key"))
	require.NoError(t, err)
	return signed
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/clients", Protected(), RequirePermission("clients", "view"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin-only", Protected(), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequirePermissionAllowsGrantedAction(t *testing.T) {
	db.DB = setupTestDB(t)

	role := models.Role{Name: "viewer", Permissions: []models.Permission{
		{Name: "view_clients", Module: "clients", Action: "view"},
	}}
	require.NoError(t, db.DB.Create(&role).Error)
	user := models.User{Name: "u", Email: "u@example.com", RoleID: role.ID}
	require.NoError(t, db.DB.Create(&user).Error)

	app := testApp()
	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID, role.Name))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermissionDeniesMissingAction(t *testing.T) {
	db.DB = setupTestDB(t)

	role := models.Role{Name: "creator", Permissions: []models.Permission{
		{Name: "create_clients", Module: "clients", Action: "create"},
	}}
	require.NoError(t, db.DB.Create(&role).Error)
	user := models.User{Name: "u", Email: "u@example.com", RoleID: role.ID}
	require.NoError(t, db.DB.Create(&user).Error)

	app := testApp()
	req := httptest.NewRequest("GET", "/clients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID, role.Name))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequirePermissionRejectsMissingToken(t *testing.T) {
	db.DB = setupTestDB(t)

	app := testApp()
	req := httptest.NewRequest("GET", "/clients", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleMatchesExactName(t *testing.T) {
	db.DB = setupTestDB(t)

	admin := models.Role{Name: "admin"}
	require.NoError(t, db.DB.Create(&admin).Error)
	staff := models.Role{Name: "staff"}
	require.NoError(t, db.DB.Create(&staff).Error)

	adminUser := models.User{Name: "a", Email: "a@example.com", RoleID: admin.ID}
	require.NoError(t, db.DB.Create(&adminUser).Error)
	staffUser := models.User{Name: "s", Email: "s@example.com", RoleID: staff.ID}
	require.NoError(t, db.DB.Create(&staffUser).Error)

	app := testApp()

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, adminUser.ID, "admin"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, staffUser.ID, "staff"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
