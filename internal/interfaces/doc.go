// Package interfaces documents the core abstractions used throughout the catalog.
//
// # Interface Categories
//
// ## Catalog Operations (internal/services/interfaces.go)
//
//   - AuthorWriter: create authors
//   - CategoryWriter: create categories, link and unlink books
//   - BookReader: find books by id, availability, author or category
//   - BookWriter: create, update and delete books
//   - CatalogService: all of the above, implemented by services.Catalog
//
// The demo scenario depends on CatalogService only, so a different storage
// backend can be dropped in behind it.
//
// ## Logging
//
//   - gorm logger.Interface: implemented by logging.GormLogger
//
// # Adding a New Entity
//
//  1. Declare the model in internal/entities/ with gorm and validate tags
//     and a BeforeSave hook calling entities.Validate.
//
//  2. Register it in database.NewDatabase's AutoMigrate call.
//
//  3. Create sub-package internal/database/<entity>/:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  4. Expose operations from services.Catalog, each wrapped in
//     database.Database.Transaction.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
