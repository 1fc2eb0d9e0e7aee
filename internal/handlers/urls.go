package handlers

import (
	"errors"
	"net/http"

	"github.com/srhafid/BookApi/internal/repository"
	"github.com/srhafid/BookApi/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateURLRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Author      string `json:"author" binding:"required"`
	Rating      int    `json:"rating"`
	UserID      uint   `json:"user_id" binding:"required"`
}

type UpdateURLRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Author      *string `json:"author"`
	Rating      *int    `json:"rating"`
}

func (h *Handler) CreateURL(c *gin.Context) {
	var req CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.urlService.Create(c.Request.Context(), services.CreateURLInput{
		Title:       req.Title,
		Description: req.Description,
		Author:      req.Author,
		Rating:      req.Rating,
		UserID:      req.UserID,
	}, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating URL"})
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) GetURL(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	url, err := h.urlService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading URL"})
		}
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) UpdateURL(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var req UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}

	updated, err := h.urlService.Update(c.Request.Context(), id, fields, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating URL"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) DeleteURL(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	deleted, err := h.urlService.Delete(c.Request.Context(), id, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting URL"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
