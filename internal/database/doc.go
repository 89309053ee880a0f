// Package database provides the data access layer for the catalog.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, pool, migrations, Transaction
//	├── errors.go        # ConnectionInitError, TransactionError, IsConstraintViolation
//	├── authors/         # Author queries
//	├── books/           # Book queries and the book_category association
//	└── categories/      # Category queries
//
// # Transactions
//
// Repositories never begin transactions. Callers wrap work in
// Database.Transaction and build repositories on the transaction handle:
//
//	db, err := database.NewDatabase(cfg.Database, nil)
//
//	err = db.Transaction("rename book", func(tx *gorm.DB) error {
//		repo := books.NewRepository(tx)
//		book, err := repo.GetBookByID(id)
//		if err != nil {
//			return err
//		}
//		book.Title = "Nineteen Eighty-Four"
//		return repo.SaveBook(book)
//	})
//
// Returning an error, or panicking, rolls the transaction back. The error
// reaches the caller as a *TransactionError that unwraps to the cause.
//
// # Drivers
//
// sqlite (default), mysql and postgres are supported. sqlite is limited to
// a single pooled connection.
package database
