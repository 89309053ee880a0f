package services

import "github.com/mrlokans/catalog/internal/entities"

// AuthorWriter creates authors.
type AuthorWriter interface {
	CreateAuthor(name, country string) (*entities.Author, error)
}

// CategoryWriter creates categories and manages the book-category
// association.
type CategoryWriter interface {
	CreateCategory(name string) (*entities.Category, error)
	AddCategory(book *entities.Book, category *entities.Category) error
	RemoveCategory(book *entities.Book, category *entities.Category) error
}

// BookReader provides read-only access to books. Single lookups return nil
// without an error when nothing matches.
type BookReader interface {
	FindBookByID(id uint) (*entities.Book, error)
	FindAvailableBooks() ([]*entities.Book, error)
	FindBooksByAuthor(authorID uint) ([]*entities.Book, error)
	FindBooksByCategory(categoryID uint) ([]*entities.Book, error)
}

// BookWriter creates, updates and deletes books.
type BookWriter interface {
	CreateBook(title string, author *entities.Author, year int) (*entities.Book, error)
	UpdateBook(id uint, title string, available bool) (*entities.Book, error)
	DeleteBook(id uint) (*entities.Book, error)
	DeleteBookAndDetach(book *entities.Book) (bool, error)
}

// CatalogService is the full set of catalog operations.
type CatalogService interface {
	AuthorWriter
	CategoryWriter
	BookReader
	BookWriter
	FindAuthorByID(id uint) (*entities.Author, error)
	FindAllAuthors() ([]*entities.Author, error)
	FindCategoryByID(id uint) (*entities.Category, error)
	FindCategoryByName(name string) (*entities.Category, error)
	CountBooksInCategory(categoryID uint) (int64, error)
}
