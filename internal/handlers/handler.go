package handlers

import (
	"log/slog"

	"github.com/srhafid/BookApi/internal/auth"
	"github.com/srhafid/BookApi/internal/config"
	"github.com/srhafid/BookApi/internal/services"
)

type Handler struct {
	cfg         config.Config
	logger      *slog.Logger
	userService *services.UserService
	urlService  *services.URLService
	tokens      *auth.TokenService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	userService *services.UserService,
	urlService *services.URLService,
	tokens *auth.TokenService,
) *Handler {
	return &Handler{
		cfg:         cfg,
		logger:      logger,
		userService: userService,
		urlService:  urlService,
		tokens:      tokens,
	}
}
