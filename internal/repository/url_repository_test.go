package repository

import (
	"testing"

	"github.com/srhafid/BookApi/internal/models"

	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, repo *UserRepository) *models.User {
	user := models.User{Username: "owner", PasswordHash: "hash", Role: "user"}
	if err := repo.Create(&user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func TestURLRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewURLRepository(db)

	url := models.URL{Title: "The Go Programming Language", Description: "book", Author: "Donovan", Rating: 5, UserID: user.ID}
	err := repo.Create(&url)
	assert.NoError(t, err)
	assert.NotZero(t, url.ID)

	got, err := repo.GetByID(url.ID)
	assert.NoError(t, err)
	assert.Equal(t, url.Title, got.Title)
	assert.Equal(t, url.Author, got.Author)
	assert.Equal(t, 5, got.Rating)
	assert.Equal(t, user.ID, got.UserID)
}

func TestURLRepository_GetNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewURLRepository(db)

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestURLRepository_ListByUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewURLRepository(db)

	assert.NoError(t, repo.Create(&models.URL{Title: "a", Author: "x", UserID: user.ID}))
	assert.NoError(t, repo.Create(&models.URL{Title: "b", Author: "y", UserID: user.ID}))

	urls, err := repo.ListByUser(user.ID)
	assert.NoError(t, err)
	assert.Len(t, urls, 2)

	urls, err = repo.ListByUser(999)
	assert.NoError(t, err)
	assert.Empty(t, urls)
}

func TestURLRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewURLRepository(db)

	url := models.URL{Title: "t", Author: "a", Rating: 5, UserID: user.ID}
	assert.NoError(t, repo.Create(&url))

	updated, err := repo.Update(url.ID, map[string]interface{}{"rating": 4})
	assert.NoError(t, err)
	assert.True(t, updated)

	got, _ := repo.GetByID(url.ID)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "t", got.Title)

	updated, err = repo.Update(999, map[string]interface{}{"rating": 1})
	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestURLRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, NewUserRepository(db))
	repo := NewURLRepository(db)

	url := models.URL{Title: "t", Author: "a", UserID: user.ID}
	assert.NoError(t, repo.Create(&url))

	deleted, err := repo.Delete(url.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(url.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = repo.Delete(url.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
