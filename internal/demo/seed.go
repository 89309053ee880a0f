// Package demo seeds a sample catalog and runs the scripted walkthrough of
// the catalog operations.
package demo

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/services"
)

// AuthorConfig describes a seeded author.
type AuthorConfig struct {
	Name    string
	Country string
}

// BookConfig holds a book and its category names for deferred assignment.
type BookConfig struct {
	Title         string
	Author        string
	Year          int
	CategoryNames []string
}

// Library holds everything Seed created, keyed by name and title.
type Library struct {
	Authors    map[string]*entities.Author
	Categories map[string]*entities.Category
	Books      map[string]*entities.Book
}

func SampleAuthors() []AuthorConfig {
	return []AuthorConfig{
		{Name: "George Orwell", Country: "United Kingdom"},
		{Name: "Aldous Huxley", Country: "United Kingdom"},
		{Name: "Ray Bradbury", Country: "United States"},
	}
}

func SampleCategories() []string {
	return []string{
		"Fiction",
		"Dystopian",
		"Classic",
		"Science Fiction",
		"Political Satire",
	}
}

func SampleBooks() []BookConfig {
	return []BookConfig{
		{Title: "1984", Author: "George Orwell", Year: 1949, CategoryNames: []string{"Fiction", "Dystopian", "Classic"}},
		{Title: "Animal Farm", Author: "George Orwell", Year: 1945, CategoryNames: []string{"Fiction", "Political Satire", "Classic"}},
		{Title: "Brave New World", Author: "Aldous Huxley", Year: 1932, CategoryNames: []string{"Fiction", "Science Fiction", "Classic"}},
		{Title: "Fahrenheit 451", Author: "Ray Bradbury", Year: 1953, CategoryNames: []string{"Fiction", "Science Fiction"}},
		{Title: "The Martian Chronicles", Author: "Ray Bradbury", Year: 1950, CategoryNames: []string{"Science Fiction"}},
	}
}

// Seed creates the sample authors, categories and books and links the
// books to their categories. Any failure aborts seeding.
func Seed(catalog services.CatalogService, log zerolog.Logger) (*Library, error) {
	lib := &Library{
		Authors:    make(map[string]*entities.Author),
		Categories: make(map[string]*entities.Category),
		Books:      make(map[string]*entities.Book),
	}

	for _, cfg := range SampleAuthors() {
		author, err := catalog.CreateAuthor(cfg.Name, cfg.Country)
		if err != nil {
			return nil, fmt.Errorf("failed to create author %s: %w", cfg.Name, err)
		}
		lib.Authors[author.Name] = author
		log.Info().Msgf("Created author: %s (%s) id=%d", author.Name, author.Country, author.ID)
	}

	for _, name := range SampleCategories() {
		category, err := catalog.CreateCategory(name)
		if err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", name, err)
		}
		lib.Categories[category.Name] = category
		log.Info().Msgf("Created category: %s id=%d", category.Name, category.ID)
	}

	for _, cfg := range SampleBooks() {
		author, ok := lib.Authors[cfg.Author]
		if !ok {
			return nil, fmt.Errorf("book %s references unknown author %s", cfg.Title, cfg.Author)
		}
		book, err := catalog.CreateBook(cfg.Title, author, cfg.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to create book %s: %w", cfg.Title, err)
		}
		lib.Books[book.Title] = book
		log.Info().Msgf("Created book: %s by %s (%d) id=%d", book.Title, book.AuthorName, book.PublicationYear, book.ID)

		for _, name := range cfg.CategoryNames {
			category, ok := lib.Categories[name]
			if !ok {
				return nil, fmt.Errorf("book %s references unknown category %s", cfg.Title, name)
			}
			if err := catalog.AddCategory(book, category); err != nil {
				return nil, fmt.Errorf("failed to add category %s to %s: %w", name, cfg.Title, err)
			}
		}
		log.Info().Msgf("Categorized: %s", book)
	}

	return lib, nil
}
