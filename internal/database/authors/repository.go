// Package authors provides database operations for catalog authors.
//
// Repositories do not open transactions themselves; pass a transaction
// handle from database.Database.Transaction to make a call atomic.
//
// # Usage
//
//	repo := authors.NewRepository(tx)
//	author, err := repo.GetAuthorByID(1)
package authors

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAuthor inserts the author row only. Books in author.Books are not saved.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Omit(clause.Associations).Create(author).Error
}

// GetAuthorByID retrieves an author with its books.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("books.id ASC")
	}).First(&author, id).Error
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAllAuthors retrieves every author without books.
func (r *Repository) GetAllAuthors() ([]*entities.Author, error) {
	var authors []*entities.Author
	err := r.db.Order("id ASC").Find(&authors).Error
	return authors, err
}
