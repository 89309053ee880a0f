// Package books provides database operations for books and their
// category associations.
//
// Every query that returns books loads the author and the categories
// eagerly; nothing is fetched lazily afterwards.
//
// # Usage
//
//	repo := books.NewRepository(tx)
//	book, err := repo.GetBookByID(123)
package books

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/catalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) withRelations() *gorm.DB {
	return r.db.Preload("Author").Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("categories.id ASC")
	})
}

// CreateBook inserts the book row. The author must already exist; categories
// are attached separately with AddCategory.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Create(book).Error
}

// GetBookByID retrieves a book with its author and categories.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.withRelations().First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookWithAuthorBooks retrieves a book whose author is loaded together
// with the author's full book collection.
func (r *Repository) GetBookWithAuthorBooks(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.withRelations().Preload("Author.Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("books.id ASC")
	}).First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// SaveBook writes all scalar columns of the book back. Associations are
// left untouched.
func (r *Repository) SaveBook(book *entities.Book) error {
	return r.db.Omit(clause.Associations).Save(book).Error
}

// GetAvailableBooks retrieves all books currently marked available.
func (r *Repository) GetAvailableBooks() ([]*entities.Book, error) {
	var books []*entities.Book
	err := r.withRelations().Where("is_available = ?", true).Order("books.id ASC").Find(&books).Error
	return books, err
}

// GetBooksByAuthor retrieves books referencing the author.
func (r *Repository) GetBooksByAuthor(authorID uint) ([]*entities.Book, error) {
	var books []*entities.Book
	err := r.withRelations().Where("author_id = ?", authorID).Order("books.id ASC").Find(&books).Error
	return books, err
}

// GetBooksByCategory retrieves books linked to the category through the
// join table.
func (r *Repository) GetBooksByCategory(categoryID uint) ([]*entities.Book, error) {
	var books []*entities.Book
	subQuery := fmt.Sprintf("books.id IN (SELECT book_id FROM %s WHERE category_id = ?)", entities.BookCategoryTable)
	err := r.withRelations().Where(subQuery, categoryID).Order("books.id ASC").Find(&books).Error
	return books, err
}

// AddCategory links a book and a category. Linking an existing pair is a no-op.
func (r *Repository) AddCategory(bookID, categoryID uint) error {
	var book entities.Book
	if err := r.db.First(&book, bookID).Error; err != nil {
		return err
	}
	var category entities.Category
	if err := r.db.First(&category, categoryID).Error; err != nil {
		return err
	}
	return r.db.Model(&book).Association("Categories").Append(&category)
}

// RemoveCategory deletes the join row for the pair. The book and the
// category themselves are kept.
func (r *Repository) RemoveCategory(bookID, categoryID uint) error {
	var book entities.Book
	if err := r.db.First(&book, bookID).Error; err != nil {
		return err
	}
	var category entities.Category
	if err := r.db.First(&category, categoryID).Error; err != nil {
		return err
	}
	return r.db.Model(&book).Association("Categories").Delete(&category)
}

// DeleteBook removes the book's join rows and then the book row. It
// reports whether a book row was deleted.
func (r *Repository) DeleteBook(id uint) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE book_id = ?", entities.BookCategoryTable)
	if err := r.db.Exec(query, id).Error; err != nil {
		return false, err
	}
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
