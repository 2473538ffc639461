package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/verandah/app/models"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each test gets its own named shared-cache database so the connection pool
// sees one store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	require.NoError(t, err)

	return db
}

// seedUser inserts a user and returns it.
func seedUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test " + role,
		Email:    fmt.Sprintf("%s-%s@test.local", t.Name(), role),
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedMenu inserts a category plus the two café staples used across order
// and payment tests: Espresso at 3.50 and Latte at 4.75.
func seedMenu(t *testing.T, db *gorm.DB) (espresso, latte *models.MenuItem) {
	t.Helper()

	category := &models.Category{Name: "Hot Beverages " + t.Name(), IsActive: true}
	require.NoError(t, db.Create(category).Error)

	espresso = &models.MenuItem{
		Name: "Espresso", Price: 3.50, CategoryID: category.ID,
		IsAvailable: true, PreparationTime: 3,
	}
	latte = &models.MenuItem{
		Name: "Latte", Price: 4.75, CategoryID: category.ID,
		IsAvailable: true, PreparationTime: 5,
	}
	require.NoError(t, db.Create(espresso).Error)
	require.NoError(t, db.Create(latte).Error)
	return espresso, latte
}

// seedTable inserts one available table.
func seedTable(t *testing.T, db *gorm.DB, number int) *models.Table {
	t.Helper()

	table := &models.Table{
		TableNumber: number,
		Capacity:    2,
		Status:      models.TableAvailable,
	}
	require.NoError(t, db.Create(table).Error)
	return table
}
