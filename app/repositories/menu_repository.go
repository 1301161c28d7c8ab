package repositories

import (
	"gorm.io/gorm"

	"quickbites/app/models"
)

// MenuRepository handles database operations for MenuItem.
type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// Available returns every item with the availability flag set, in
// insertion order.
func (r *MenuRepository) Available() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("available = ?", true).Find(&items).Error
	return items, err
}

// FindByID looks up a menu item by primary key. The availability flag is
// deliberately not consulted here.
func (r *MenuRepository) FindByID(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	return item, err
}

// Count returns the number of menu items, available or not.
func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.MenuItem{}).Count(&n).Error
	return n, err
}
