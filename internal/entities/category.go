package entities

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex;size:100" json:"name" validate:"required"`
	Books     []*Book   `gorm:"many2many:book_category;" json:"-" validate:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	return Validate(c)
}

func (c *Category) AddBook(book *Book) {
	Link(book, c)
}

func (c *Category) RemoveBook(book *Book) {
	Unlink(book, c)
}

// HasBook reports whether the book is in the category's set.
func (c *Category) HasBook(book *Book) bool {
	return indexOfBook(c.Books, book) >= 0
}

func sameCategory(a, b *Category) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.ID != 0 && a.ID == b.ID
}

func indexOfCategory(categories []*Category, category *Category) int {
	for i, c := range categories {
		if sameCategory(c, category) {
			return i
		}
	}
	return -1
}
