package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/categories"
	"github.com/mrlokans/catalog/internal/entities"
)

// ErrNotPersisted is returned when an operation needs an entity that has
// not been saved yet.
var ErrNotPersisted = errors.New("entity has not been persisted")

// Catalog runs every operation in its own transaction. On failure the
// transaction is rolled back and a *database.TransactionError is returned;
// in-memory entities are only touched after a successful commit.
type Catalog struct {
	db *database.Database
}

// NewCatalog returns a catalog running its operations on db.
func NewCatalog(db *database.Database) *Catalog {
	return &Catalog{db: db}
}

// CreateAuthor persists a new author and returns it with its id.
func (c *Catalog) CreateAuthor(name, country string) (*entities.Author, error) {
	author := &entities.Author{Name: name, Country: country}
	err := c.db.Transaction("create author", func(tx *gorm.DB) error {
		return authors.NewRepository(tx).CreateAuthor(author)
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// CreateCategory persists a new category. Names are unique, so a
// duplicate fails with a constraint violation as the cause.
func (c *Catalog) CreateCategory(name string) (*entities.Category, error) {
	category := &entities.Category{Name: name}
	err := c.db.Transaction("create category", func(tx *gorm.DB) error {
		return categories.NewRepository(tx).CreateCategory(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// CreateBook persists a new available book for author and registers it in
// author.Books. AuthorName is copied from the author at this point.
func (c *Catalog) CreateBook(title string, author *entities.Author, year int) (*entities.Book, error) {
	book := entities.NewBook(title, author, year)
	err := c.db.Transaction("create book", func(tx *gorm.DB) error {
		if author != nil && author.ID == 0 {
			return ErrNotPersisted
		}
		return books.NewRepository(tx).CreateBook(book)
	})
	if err != nil {
		return nil, err
	}
	if author != nil {
		author.AddBook(book)
	}
	return book, nil
}

// FindBookByID returns the book with its author and categories, or nil.
func (c *Catalog) FindBookByID(id uint) (*entities.Book, error) {
	var book *entities.Book
	err := c.db.Transaction("find book", func(tx *gorm.DB) error {
		found, err := books.NewRepository(tx).GetBookByID(id)
		if database.IsNotFound(err) {
			return nil
		}
		book = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook sets the title and availability of a book. It returns the
// updated book, or nil when no book has the id.
func (c *Catalog) UpdateBook(id uint, title string, available bool) (*entities.Book, error) {
	var book *entities.Book
	err := c.db.Transaction("update book", func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)
		found, err := repo.GetBookByID(id)
		if database.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		found.Title = title
		found.IsAvailable = available
		if err := repo.SaveBook(found); err != nil {
			return err
		}
		book = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// FindAvailableBooks returns every book marked available.
func (c *Catalog) FindAvailableBooks() ([]*entities.Book, error) {
	var result []*entities.Book
	err := c.db.Transaction("find available books", func(tx *gorm.DB) error {
		var err error
		result, err = books.NewRepository(tx).GetAvailableBooks()
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindBooksByAuthor returns the books written by the author with authorID.
func (c *Catalog) FindBooksByAuthor(authorID uint) ([]*entities.Book, error) {
	var result []*entities.Book
	err := c.db.Transaction("find books by author", func(tx *gorm.DB) error {
		var err error
		result, err = books.NewRepository(tx).GetBooksByAuthor(authorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindBooksByCategory returns the books linked to the category with
// categoryID.
func (c *Catalog) FindBooksByCategory(categoryID uint) ([]*entities.Book, error) {
	var result []*entities.Book
	err := c.db.Transaction("find books by category", func(tx *gorm.DB) error {
		var err error
		result, err = books.NewRepository(tx).GetBooksByCategory(categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteBook removes the book row and its category links. The returned
// book has been detached from its author's collection and from its
// categories. Deleting an absent id returns nil and no error. Objects the
// caller already holds are not touched; use DeleteBookAndDetach for those.
func (c *Catalog) DeleteBook(id uint) (*entities.Book, error) {
	var book *entities.Book
	err := c.db.Transaction("delete book", func(tx *gorm.DB) error {
		repo := books.NewRepository(tx)
		found, err := repo.GetBookWithAuthorBooks(id)
		if database.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := repo.DeleteBook(id); err != nil {
			return err
		}
		book = found
		return nil
	})
	if err != nil || book == nil {
		return nil, err
	}

	detach(book)
	return book, nil
}

// DeleteBookAndDetach deletes the row with book.ID and, after commit,
// removes book from book.Author.Books and unlinks it from every category
// in book.Categories. These are the caller's own objects, so collections
// handed out by CreateBook and AddCategory no longer hold it. It reports
// false when no row had the id, leaving the objects untouched.
func (c *Catalog) DeleteBookAndDetach(book *entities.Book) (bool, error) {
	var deleted bool
	err := c.db.Transaction("delete book", func(tx *gorm.DB) error {
		if book == nil || book.ID == 0 {
			return ErrNotPersisted
		}
		var err error
		deleted, err = books.NewRepository(tx).DeleteBook(book.ID)
		return err
	})
	if err != nil || !deleted {
		return false, err
	}
	detach(book)
	return true, nil
}

// AddCategory links book and category in the join table and then in
// memory on both sides.
func (c *Catalog) AddCategory(book *entities.Book, category *entities.Category) error {
	err := c.db.Transaction("add category", func(tx *gorm.DB) error {
		if !persisted(book, category) {
			return ErrNotPersisted
		}
		return books.NewRepository(tx).AddCategory(book.ID, category.ID)
	})
	if err != nil {
		return err
	}
	entities.Link(book, category)
	return nil
}

// RemoveCategory unlinks book and category in the join table and then in
// memory on both sides.
func (c *Catalog) RemoveCategory(book *entities.Book, category *entities.Category) error {
	err := c.db.Transaction("remove category", func(tx *gorm.DB) error {
		if !persisted(book, category) {
			return ErrNotPersisted
		}
		return books.NewRepository(tx).RemoveCategory(book.ID, category.ID)
	})
	if err != nil {
		return err
	}
	entities.Unlink(book, category)
	return nil
}

// FindAuthorByID returns the author with its books, or nil.
func (c *Catalog) FindAuthorByID(id uint) (*entities.Author, error) {
	var author *entities.Author
	err := c.db.Transaction("find author", func(tx *gorm.DB) error {
		found, err := authors.NewRepository(tx).GetAuthorByID(id)
		if database.IsNotFound(err) {
			return nil
		}
		author = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return author, nil
}

// FindCategoryByID returns the category with its books, or nil.
func (c *Catalog) FindCategoryByID(id uint) (*entities.Category, error) {
	var category *entities.Category
	err := c.db.Transaction("find category", func(tx *gorm.DB) error {
		found, err := categories.NewRepository(tx).GetCategoryByID(id)
		if database.IsNotFound(err) {
			return nil
		}
		category = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// FindAllAuthors returns every author ordered by id, without books.
func (c *Catalog) FindAllAuthors() ([]*entities.Author, error) {
	var result []*entities.Author
	err := c.db.Transaction("find all authors", func(tx *gorm.DB) error {
		var err error
		result, err = authors.NewRepository(tx).GetAllAuthors()
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindCategoryByName returns the category with the exact name, without
// books, or nil.
func (c *Catalog) FindCategoryByName(name string) (*entities.Category, error) {
	var category *entities.Category
	err := c.db.Transaction("find category by name", func(tx *gorm.DB) error {
		found, err := categories.NewRepository(tx).GetCategoryByName(name)
		if database.IsNotFound(err) {
			return nil
		}
		category = found
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// CountBooksInCategory counts the join rows of the category with
// categoryID. An unknown id counts zero.
func (c *Catalog) CountBooksInCategory(categoryID uint) (int64, error) {
	var count int64
	err := c.db.Transaction("count books in category", func(tx *gorm.DB) error {
		var err error
		count, err = categories.NewRepository(tx).CountBooks(categoryID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// detach clears every in-memory association of a deleted book. The
// author name is kept.
func detach(book *entities.Book) {
	if book.Author != nil {
		book.Author.RemoveBook(book)
	}
	for _, category := range append([]*entities.Category(nil), book.Categories...) {
		entities.Unlink(book, category)
	}
}

func persisted(book *entities.Book, category *entities.Category) bool {
	return book != nil && category != nil && book.ID != 0 && category.ID != 0
}
