// Package categories provides database operations for book categories.
//
// # Usage
//
//	repo := categories.NewRepository(tx)
//	category, err := repo.GetCategoryByName("Dystopian")
package categories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCategory inserts a category. Names are unique, so a second category
// with the same name fails with a constraint violation.
func (r *Repository) CreateCategory(category *entities.Category) error {
	return r.db.Omit(clause.Associations).Create(category).Error
}

// GetCategoryByID retrieves a category with its books.
func (r *Repository) GetCategoryByID(id uint) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("books.id ASC")
	}).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName retrieves a category by exact name, without books.
func (r *Repository) GetCategoryByName(name string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CountBooks returns how many books are associated with the category.
func (r *Repository) CountBooks(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Table(entities.BookCategoryTable).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
