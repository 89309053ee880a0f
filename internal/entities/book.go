package entities

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	Title           string      `gorm:"not null;index;size:512" json:"title" validate:"required"`
	AuthorName      string      `gorm:"not null;size:256" json:"author_name" validate:"required"` // Copied from Author.Name by SetAuthor
	PublicationYear int         `json:"publication_year,omitempty"`
	IsAvailable     bool        `gorm:"not null" json:"is_available"`
	AuthorID        *uint       `gorm:"index" json:"author_id,omitempty"`
	Author          *Author     `gorm:"foreignKey:AuthorID" json:"-" validate:"-"`
	Categories      []*Category `gorm:"many2many:book_category;" json:"categories,omitempty" validate:"-"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewBook returns an available book with the given author attached.
func NewBook(title string, author *Author, year int) *Book {
	book := &Book{
		Title:           title,
		PublicationYear: year,
		IsAvailable:     true,
	}
	book.SetAuthor(author)
	return book
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeSave(tx *gorm.DB) error {
	return Validate(b)
}

// SetAuthor sets the author reference and copies the author's current name
// into AuthorName. The copy is not refreshed if the author is renamed later.
// A nil author clears the reference and keeps AuthorName.
func (b *Book) SetAuthor(author *Author) {
	b.Author = author
	if author == nil {
		b.AuthorID = nil
		return
	}
	b.AuthorName = author.Name
	if author.ID != 0 {
		id := author.ID
		b.AuthorID = &id
	}
}

func (b *Book) AddCategory(category *Category) {
	Link(b, category)
}

func (b *Book) RemoveCategory(category *Category) {
	Unlink(b, category)
}

// HasCategory reports whether the category is in the book's set.
func (b *Book) HasCategory(category *Category) bool {
	return indexOfCategory(b.Categories, category) >= 0
}

// Equal compares the persisted scalar fields. Categories and the author
// pointer are not part of a book's equality.
func (b *Book) Equal(other *Book) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.ID == other.ID &&
		b.Title == other.Title &&
		b.AuthorName == other.AuthorName &&
		b.PublicationYear == other.PublicationYear &&
		b.IsAvailable == other.IsAvailable
}

func (b *Book) String() string {
	names := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		names = append(names, c.Name)
	}
	return fmt.Sprintf("Book{id=%d, title='%s', authorName='%s', publicationYear=%d, isAvailable=%t, categories=[%s]}",
		b.ID, b.Title, b.AuthorName, b.PublicationYear, b.IsAvailable, strings.Join(names, ", "))
}

func sameBook(a, b *Book) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.ID != 0 && a.ID == b.ID
}

func indexOfBook(books []*Book, book *Book) int {
	for i, b := range books {
		if sameBook(b, book) {
			return i
		}
	}
	return -1
}
