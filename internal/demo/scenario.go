package demo

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/services"
)

// missingBookID is never assigned by the seed data.
const missingBookID = 9999

type step struct {
	name string
	run  func(lib *Library) error
}

// Scenario seeds the catalog and runs a fixed sequence of lookups and
// mutations, logging each result.
type Scenario struct {
	catalog services.CatalogService
	log     zerolog.Logger
}

func NewScenario(catalog services.CatalogService, log zerolog.Logger) *Scenario {
	return &Scenario{catalog: catalog, log: log}
}

// Run fails only when seeding fails. A failed step is logged and the
// remaining steps still run; the number of failed steps is returned in
// Result.
func (s *Scenario) Run() (*Result, error) {
	lib, err := Seed(s.catalog, s.log)
	if err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	result := &Result{Library: lib}
	for _, st := range s.steps() {
		s.log.Info().Msgf("--- %s ---", st.name)
		if err := st.run(lib); err != nil {
			s.log.Error().Err(err).Msgf("Step failed: %s", st.name)
			result.FailedSteps = append(result.FailedSteps, st.name)
		}
	}
	return result, nil
}

// Result is what a completed run leaves behind.
type Result struct {
	Library     *Library
	FailedSteps []string
}

func (s *Scenario) steps() []step {
	return []step{
		{name: "Find book by id", run: s.findBookByID},
		{name: "Find books in Dystopian", run: s.findDystopian},
		{name: "Add Science Fiction to 1984", run: s.addScienceFiction},
		{name: "Find books by George Orwell", run: s.findByOrwell},
		{name: "Mark Animal Farm unavailable", run: s.markUnavailable},
		{name: "Remove Classic from 1984", run: s.removeClassic},
		{name: "Delete The Martian Chronicles", run: s.deleteBook},
		{name: "Delete The Martian Chronicles again", run: s.deleteBookAgain},
		{name: "Find missing book", run: s.findMissing},
		{name: "Summarize catalog", run: s.summarize},
	}
}

func (s *Scenario) findBookByID(lib *Library) error {
	book, err := s.catalog.FindBookByID(lib.Books["1984"].ID)
	if err != nil {
		return err
	}
	s.printBook(book)
	return nil
}

func (s *Scenario) findDystopian(lib *Library) error {
	return s.printCategory(lib.Categories["Dystopian"])
}

func (s *Scenario) addScienceFiction(lib *Library) error {
	book := lib.Books["1984"]
	if err := s.catalog.AddCategory(book, lib.Categories["Science Fiction"]); err != nil {
		return err
	}
	s.log.Info().Msgf("Added category Science Fiction to %s, it now has %d categories", book.Title, len(book.Categories))
	return s.printCategory(lib.Categories["Science Fiction"])
}

func (s *Scenario) findByOrwell(lib *Library) error {
	author := lib.Authors["George Orwell"]
	found, err := s.catalog.FindBooksByAuthor(author.ID)
	if err != nil {
		return err
	}
	s.printBooks(fmt.Sprintf("Books by %s", author.Name), found)
	return nil
}

func (s *Scenario) markUnavailable(lib *Library) error {
	book := lib.Books["Animal Farm"]
	updated, err := s.catalog.UpdateBook(book.ID, "Animal Farm: A Fairy Story", false)
	if err != nil {
		return err
	}
	if updated == nil {
		s.log.Info().Msgf("Book id=%d not found, nothing updated", book.ID)
		return nil
	}
	book.Title = updated.Title
	book.IsAvailable = updated.IsAvailable
	s.log.Info().Msgf("Updated book: %s", updated)

	available, err := s.catalog.FindAvailableBooks()
	if err != nil {
		return err
	}
	s.printBooks("Available books", available)
	return nil
}

func (s *Scenario) removeClassic(lib *Library) error {
	book := lib.Books["1984"]
	if err := s.catalog.RemoveCategory(book, lib.Categories["Classic"]); err != nil {
		return err
	}
	s.log.Info().Msgf("Removed category Classic from %s", book)
	return s.printCategory(lib.Categories["Classic"])
}

func (s *Scenario) deleteBook(lib *Library) error {
	book := lib.Books["The Martian Chronicles"]
	author := book.Author

	deleted, err := s.catalog.DeleteBookAndDetach(book)
	if err != nil {
		return err
	}
	if !deleted {
		s.log.Info().Msgf("Book id=%d not found, nothing deleted", book.ID)
		return nil
	}
	s.log.Info().Msgf("Deleted book: %s", book)

	again, err := s.catalog.FindBookByID(book.ID)
	if err != nil {
		return err
	}
	if again == nil {
		s.log.Info().Msgf("Book id=%d no longer exists", book.ID)
	}
	if author != nil {
		remaining, err := s.catalog.FindBooksByAuthor(author.ID)
		if err != nil {
			return err
		}
		s.printBooks(fmt.Sprintf("Books by %s", author.Name), remaining)
	}
	return nil
}

func (s *Scenario) deleteBookAgain(lib *Library) error {
	book := lib.Books["The Martian Chronicles"]
	deleted, err := s.catalog.DeleteBook(book.ID)
	if err != nil {
		return err
	}
	if deleted == nil {
		s.log.Info().Msgf("Book id=%d not found, nothing deleted", book.ID)
	}
	return nil
}

func (s *Scenario) findMissing(lib *Library) error {
	book, err := s.catalog.FindBookByID(missingBookID)
	if err != nil {
		return err
	}
	if book == nil {
		s.log.Info().Msgf("Book id=%d not found", missingBookID)
		return nil
	}
	s.printBook(book)
	return nil
}

func (s *Scenario) summarize(lib *Library) error {
	authors, err := s.catalog.FindAllAuthors()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	s.log.Info().Msgf("Authors (%d): %s", len(authors), strings.Join(names, ", "))

	counts := make([]string, 0, len(lib.Categories))
	for _, name := range SampleCategories() {
		category, err := s.catalog.FindCategoryByName(name)
		if err != nil {
			return err
		}
		if category == nil {
			s.log.Info().Msgf("Category %s not found", name)
			continue
		}
		count, err := s.catalog.CountBooksInCategory(category.ID)
		if err != nil {
			return err
		}
		counts = append(counts, fmt.Sprintf("%s=%d", category.Name, count))
	}
	s.log.Info().Msgf("Books per category: %s", strings.Join(counts, ", "))
	return nil
}

func (s *Scenario) printCategory(category *entities.Category) error {
	found, err := s.catalog.FindBooksByCategory(category.ID)
	if err != nil {
		return err
	}
	s.printBooks(fmt.Sprintf("Books in %s", category.Name), found)
	return nil
}

func (s *Scenario) printBook(book *entities.Book) {
	if book == nil {
		s.log.Info().Msg("Book not found")
		return
	}
	s.log.Info().Msgf("Found book: %s", book)
}

func (s *Scenario) printBooks(heading string, books []*entities.Book) {
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	s.log.Info().Msgf("%s (%d): %s", heading, len(books), strings.Join(titles, ", "))
}
