package books

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "test_books.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db), db
}

func createAuthor(t *testing.T, db *gorm.DB, name string) *entities.Author {
	author := &entities.Author{Name: name}
	require.NoError(t, db.Create(author).Error)
	return author
}

func createCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	category := &entities.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createBook(t *testing.T, repo *Repository, title string, author *entities.Author, year int) *entities.Book {
	book := entities.NewBook(title, author, year)
	require.NoError(t, repo.CreateBook(book))
	return book
}

func TestRepository_CreateBook(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")

	book := createBook(t, repo, "1984", author, 1949)

	assert.NotZero(t, book.ID)
	require.NotNil(t, book.AuthorID)
	assert.Equal(t, author.ID, *book.AuthorID)
	assert.Equal(t, "George Orwell", book.AuthorName)
	assert.True(t, book.IsAvailable)
}

func TestRepository_CreateBook_DoesNotSaveCategories(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")

	book := entities.NewBook("1984", author, 1949)
	book.AddCategory(&entities.Category{Name: "Unsaved"})
	require.NoError(t, repo.CreateBook(book))

	var count int64
	db.Model(&entities.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestRepository_CreateBook_RequiresTitle(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")

	err := repo.CreateBook(entities.NewBook("", author, 1949))

	assert.Error(t, err)
}

func TestRepository_GetBookByID_LoadsRelations(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	fiction := createCategory(t, db, "Fiction")
	dystopian := createCategory(t, db, "Dystopian")
	book := createBook(t, repo, "1984", author, 1949)
	require.NoError(t, repo.AddCategory(book.ID, fiction.ID))
	require.NoError(t, repo.AddCategory(book.ID, dystopian.ID))

	found, err := repo.GetBookByID(book.ID)

	require.NoError(t, err)
	assert.True(t, book.Equal(found))
	require.NotNil(t, found.Author)
	assert.Equal(t, "George Orwell", found.Author.Name)
	require.Len(t, found.Categories, 2)
	assert.Equal(t, "Fiction", found.Categories[0].Name)
	assert.Equal(t, "Dystopian", found.Categories[1].Name)
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	book, err := repo.GetBookByID(404)

	assert.Nil(t, book)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetBookWithAuthorBooks(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	book := createBook(t, repo, "1984", author, 1949)
	createBook(t, repo, "Animal Farm", author, 1945)

	found, err := repo.GetBookWithAuthorBooks(book.ID)

	require.NoError(t, err)
	require.NotNil(t, found.Author)
	assert.Len(t, found.Author.Books, 2)
}

func TestRepository_SaveBook(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	book := createBook(t, repo, "1984", author, 1949)

	book.Title = "Nineteen Eighty-Four"
	book.IsAvailable = false
	require.NoError(t, repo.SaveBook(book))

	found, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", found.Title)
	assert.False(t, found.IsAvailable)
}

func TestRepository_GetAvailableBooks(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	available := createBook(t, repo, "1984", author, 1949)
	lent := createBook(t, repo, "Animal Farm", author, 1945)
	lent.IsAvailable = false
	require.NoError(t, repo.SaveBook(lent))

	books, err := repo.GetAvailableBooks()

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, available.ID, books[0].ID)
}

func TestRepository_GetBooksByAuthor(t *testing.T) {
	repo, db := setupTestDB(t)
	orwell := createAuthor(t, db, "George Orwell")
	huxley := createAuthor(t, db, "Aldous Huxley")
	createBook(t, repo, "1984", orwell, 1949)
	createBook(t, repo, "Animal Farm", orwell, 1945)
	createBook(t, repo, "Brave New World", huxley, 1932)

	books, err := repo.GetBooksByAuthor(orwell.ID)

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "1984", books[0].Title)
	assert.Equal(t, "Animal Farm", books[1].Title)
}

func TestRepository_GetBooksByCategory(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	dystopian := createCategory(t, db, "Dystopian")
	satire := createCategory(t, db, "Political Satire")
	nineteen := createBook(t, repo, "1984", author, 1949)
	farm := createBook(t, repo, "Animal Farm", author, 1945)
	require.NoError(t, repo.AddCategory(nineteen.ID, dystopian.ID))
	require.NoError(t, repo.AddCategory(farm.ID, satire.ID))

	books, err := repo.GetBooksByCategory(dystopian.ID)

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)
}

func TestRepository_AddCategory_Idempotent(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	fiction := createCategory(t, db, "Fiction")
	book := createBook(t, repo, "1984", author, 1949)

	require.NoError(t, repo.AddCategory(book.ID, fiction.ID))
	require.NoError(t, repo.AddCategory(book.ID, fiction.ID))

	var count int64
	db.Table(entities.BookCategoryTable).Where("book_id = ?", book.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRepository_AddCategory_MissingCategory(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	book := createBook(t, repo, "1984", author, 1949)

	err := repo.AddCategory(book.ID, 404)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_RemoveCategory(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	fiction := createCategory(t, db, "Fiction")
	book := createBook(t, repo, "1984", author, 1949)
	require.NoError(t, repo.AddCategory(book.ID, fiction.ID))

	require.NoError(t, repo.RemoveCategory(book.ID, fiction.ID))

	books, err := repo.GetBooksByCategory(fiction.ID)
	require.NoError(t, err)
	assert.Empty(t, books)

	var categoryCount int64
	db.Model(&entities.Category{}).Count(&categoryCount)
	assert.Equal(t, int64(1), categoryCount, "category itself must be kept")
}

func TestRepository_DeleteBook(t *testing.T) {
	repo, db := setupTestDB(t)
	author := createAuthor(t, db, "George Orwell")
	fiction := createCategory(t, db, "Fiction")
	book := createBook(t, repo, "1984", author, 1949)
	require.NoError(t, repo.AddCategory(book.ID, fiction.ID))

	deleted, err := repo.DeleteBook(book.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetBookByID(book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joinRows int64
	db.Table(entities.BookCategoryTable).Where("book_id = ?", book.ID).Count(&joinRows)
	assert.Zero(t, joinRows)

	var authorCount, categoryCount int64
	db.Model(&entities.Author{}).Count(&authorCount)
	db.Model(&entities.Category{}).Count(&categoryCount)
	assert.Equal(t, int64(1), authorCount, "no cascade to author")
	assert.Equal(t, int64(1), categoryCount, "no cascade to category")
}

func TestRepository_DeleteBook_Absent(t *testing.T) {
	repo, _ := setupTestDB(t)

	deleted, err := repo.DeleteBook(404)

	require.NoError(t, err)
	assert.False(t, deleted)
}
