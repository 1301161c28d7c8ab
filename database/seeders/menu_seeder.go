package seeders

import (
	"gorm.io/gorm"

	"quickbites/app/models"
)

func init() {
	Register("menu", SeedMenu)
}

// StarterCatalog is the fixed catalogue inserted on first boot.
func StarterCatalog() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Margherita Pizza", Description: "Classic pizza with tomatoes and mozzarella", Price: 499, Category: "Pizza", Image: "pizza-margherita.jpg", Available: true},
		{Name: "Classic Burger", Description: "Juicy beef burger with fresh vegetables", Price: 349, Category: "Burgers", Image: "burger-classic.jpg", Available: true},
		{Name: "Chicken Caesar", Description: "Caesar salad with chicken and croutons", Price: 299, Category: "Salads", Image: "caesar-chicken.jpg", Available: true},
		{Name: "Sushi Set", Description: "Assorted sushi from fresh fish", Price: 799, Category: "Sushi", Image: "sushi-set.jpg", Available: true},
		{Name: "Pasta Bolognese", Description: "Pasta with rich meat sauce", Price: 399, Category: "Pasta", Image: "pasta-bolognese.jpg", Available: true},
		{Name: "Frappuccino", Description: "Iced blended coffee drink", Price: 199, Category: "Drinks", Image: "frappuccino.jpg", Available: true},
	}
}

// SeedMenu inserts the starter catalogue. It is idempotent (a non-empty
// menu_items table makes it a no-op) and runs in one transaction, so an
// interrupted seed never leaves a partial catalogue behind.
func SeedMenu(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.MenuItem{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		items := StarterCatalog()
		return tx.Create(&items).Error
	})
}
