package db

import (
	"testing"

	"github.com/bizdesk/bizdesk-api/models"
	"github.com/glebarez/sqlite"
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
		&models.Counter{},
	))
	return database
}

func TestSeedCreatesDefaultRolesAndCatalog(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, Seed(database))

	var roles []models.Role
	require.NoError(t, database.Find(&roles).Error)
	assert.Len(t, roles, 3)

	var admin models.Role
	require.NoError(t, database.Preload("Permissions").Where("name = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsElevated)
	assert.Len(t, admin.Permissions, len(models.Modules)*len(models.Actions))

	// Admin grants everything, including approve on expenses
	assert.True(t, admin.HasPermission("expenses", "approve"))
	assert.True(t, admin.HasPermission("devops", "execute"))

	var counter models.Counter
	require.NoError(t, database.Where("name = ?", models.TicketCounter).First(&counter).Error)
	assert.Equal(t, uint64(0), counter.Value)
}

func TestSeedIsIdempotent(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, Seed(database))
	require.NoError(t, Seed(database))

	var roleCount, permissionCount int64
	database.Model(&models.Role{}).Count(&roleCount)
	database.Model(&models.Permission{}).Count(&permissionCount)

	assert.Equal(t, int64(3), roleCount)
	assert.Equal(t, int64(len(models.Modules)*len(models.Actions)), permissionCount)
}

func TestSeededStaffRoleFailsClosed(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, Seed(database))

	var staff models.Role
	require.NoError(t, database.Preload("Permissions").Where("name = ?", "staff").First(&staff).Error)

	assert.True(t, staff.HasPermission("support", "view"))
	assert.True(t, staff.HasPermission("clients", "create"))
	// Not granted anywhere in the staff set
	assert.False(t, staff.HasPermission("support", "delete"))
	assert.False(t, staff.HasPermission("roles", "view"))
	assert.False(t, staff.HasPermission("expenses", "approve"))
}
