package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/srhafid/BookApi/internal/auth"
	"github.com/srhafid/BookApi/internal/cache"
	"github.com/srhafid/BookApi/internal/config"
	"github.com/srhafid/BookApi/internal/models"
	"github.com/srhafid/BookApi/internal/repository"
	"github.com/srhafid/BookApi/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T, authEnabled bool) (*Handler, *gorm.DB, *miniredis.Miniredis) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.URL{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:       "test-secret-12345678901234567890123456789012",
		TokenTTLMinutes: 30,
		AuthEnabled:     authEnabled,
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	audit := services.NewAuditService(db, logger)
	users := services.NewUserService(repository.NewUserRepository(db), audit, logger)
	urls := services.NewURLService(repository.NewURLRepository(db), cache.NewURLCache(rdb), audit, logger)
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

	h := NewHandler(cfg, logger, users, urls, tokens)
	return h, db, mr
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
