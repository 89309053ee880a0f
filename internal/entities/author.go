package entities

import (
	"time"

	"gorm.io/gorm"
)

type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index;size:256" json:"name" validate:"required"`
	Country   string    `gorm:"size:128" json:"country,omitempty"`
	Books     []*Book   `gorm:"foreignKey:AuthorID" json:"books,omitempty" validate:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeSave(tx *gorm.DB) error {
	return Validate(a)
}

// AddBook registers the book in the author's collection and points the book
// back at the author. Adding a book twice is a no-op.
func (a *Author) AddBook(book *Book) {
	if book == nil {
		return
	}
	book.SetAuthor(a)
	if indexOfBook(a.Books, book) < 0 {
		a.Books = append(a.Books, book)
	}
}

// RemoveBook drops the book from the author's collection and clears the
// book's author reference. AuthorName is left as it was.
func (a *Author) RemoveBook(book *Book) {
	if book == nil {
		return
	}
	if i := indexOfBook(a.Books, book); i >= 0 {
		a.Books = append(a.Books[:i], a.Books[i+1:]...)
	}
	if book.Author != nil && sameAuthor(book.Author, a) {
		book.Author = nil
		book.AuthorID = nil
	}
}

func sameAuthor(a, b *Author) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.ID != 0 && a.ID == b.ID
}
