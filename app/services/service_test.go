package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quickbites/app/models"
	"quickbites/pkg/database"
)

// newTestDB opens a fresh in-memory sqlite database per test. The named
// shared-cache DSN keeps the pool's connections on one database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := database.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	return db
}

// seedMenu inserts a small catalogue and returns it with ids populated.
func seedMenu(t *testing.T, db *gorm.DB) []models.MenuItem {
	t.Helper()

	items := []models.MenuItem{
		{Name: "Classic Burger", Description: "Juicy beef burger", Price: 349, Category: "Burgers", Image: "burger-classic.jpg", Available: true},
		{Name: "Margherita Pizza", Description: "Tomatoes and mozzarella", Price: 499, Category: "Pizza", Image: "pizza-margherita.jpg", Available: true},
		{Name: "Seasonal Special", Description: "Not on the menu right now", Price: 599, Category: "Specials", Image: "special.jpg", Available: false},
	}
	require.NoError(t, db.Create(&items).Error)
	return items
}
