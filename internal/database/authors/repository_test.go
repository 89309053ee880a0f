package authors

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
	dbPath := filepath.Join(t.TempDir(), "test_authors.db")

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

func TestRepository_CreateAuthor(t *testing.T) {
	repo, _ := setupTestDB(t)

	author := &entities.Author{Name: "George Orwell", Country: "United Kingdom"}
	err := repo.CreateAuthor(author)

	require.NoError(t, err)
	assert.NotZero(t, author.ID)
}

func TestRepository_CreateAuthor_RequiresName(t *testing.T) {
	repo, _ := setupTestDB(t)

	err := repo.CreateAuthor(&entities.Author{Country: "United Kingdom"})

	assert.Error(t, err)
}

func TestRepository_CreateAuthor_IgnoresBooks(t *testing.T) {
	repo, db := setupTestDB(t)

	author := &entities.Author{Name: "George Orwell"}
	author.AddBook(&entities.Book{Title: "1984"})
	require.NoError(t, repo.CreateAuthor(author))

	var count int64
	db.Model(&entities.Book{}).Count(&count)
	assert.Zero(t, count)
}

func TestRepository_GetAuthorByID(t *testing.T) {
	repo, db := setupTestDB(t)
	author := &entities.Author{Name: "George Orwell", Country: "United Kingdom"}
	require.NoError(t, repo.CreateAuthor(author))
	for _, title := range []string{"1984", "Animal Farm"} {
		require.NoError(t, db.Omit("Author", "Categories").Create(entities.NewBook(title, author, 1945)).Error)
	}

	found, err := repo.GetAuthorByID(author.ID)

	require.NoError(t, err)
	assert.Equal(t, "United Kingdom", found.Country)
	require.Len(t, found.Books, 2)
	assert.Equal(t, "1984", found.Books[0].Title)
}

func TestRepository_GetAuthorByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetAuthorByID(404)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetAllAuthors(t *testing.T) {
	repo, _ := setupTestDB(t)
	require.NoError(t, repo.CreateAuthor(&entities.Author{Name: "George Orwell"}))
	require.NoError(t, repo.CreateAuthor(&entities.Author{Name: "Aldous Huxley"}))

	authors, err := repo.GetAllAuthors()

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "George Orwell", authors[0].Name)
}
