package services

import (
	"log/slog"
	"os"
	"testing"

	"github.com/srhafid/BookApi/internal/cache"
	"github.com/srhafid/BookApi/internal/models"
	"github.com/srhafid/BookApi/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.URL{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func setupUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := setupTestDB(t)
	logger := testLogger()
	audit := NewAuditService(db, logger)
	return NewUserService(repository.NewUserRepository(db), audit, logger), db
}

func setupURLService(t *testing.T) (*URLService, *gorm.DB, *miniredis.Miniredis) {
	db := setupTestDB(t)
	logger := testLogger()
	audit := NewAuditService(db, logger)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewURLService(repository.NewURLRepository(db), cache.NewURLCache(rdb), audit, logger)
	return svc, db, mr
}

// setupURLServiceNoCache wires an unreachable redis client so cache
// failure paths can be exercised.
func setupURLServiceNoCache(t *testing.T) (*URLService, *gorm.DB) {
	db := setupTestDB(t)
	logger := testLogger()
	audit := NewAuditService(db, logger)
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:1", MaxRetries: -1})
	svc := NewURLService(repository.NewURLRepository(db), cache.NewURLCache(rdb), audit, logger)
	return svc, db
}

func seedServiceUser(t *testing.T, db *gorm.DB) *models.User {
	user := models.User{Username: "owner", PasswordHash: "hash", Role: "user"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}
