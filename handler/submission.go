package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvtechguy/faseyha-portal/model"
	"github.com/mvtechguy/faseyha-portal/pkg/logger"
	"github.com/mvtechguy/faseyha-portal/service"
)

type SubmissionHandler struct {
	store *service.SubmissionStore
}

func NewSubmissionHandler(store *service.SubmissionStore) *SubmissionHandler {
	return &SubmissionHandler{store: store}
}

// Submit handles POST /api/submit: validate the payload, persist a pending
// submission and hand back its tracking ID.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := req.Submission()
	if err != nil {
		// Marshalling of already-decoded JSON should not fail; treat it
		// like any other infrastructure error.
		logger.Error(c.Request.Context(), "failed to normalize submission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission. Please try again."})
		return
	}

	id, err := h.store.Create(c.Request.Context(), sub)
	if err != nil {
		// Log the storage error in full but keep it out of the response
		logger.Error(c.Request.Context(), "failed to persist submission", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process submission. Please try again."})
		return
	}

	logger.Info(c.Request.Context(), "submission received",
		"submission_id", id,
		"type", sub.SubmissionType,
		"category", sub.Category,
	)

	// TODO: notify the portal operator about the new submission once the
	// notification channel exists

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"message": "Submission received successfully",
	})
}

// Track handles GET /api/submissions/:id. It exposes only the tracking
// view; contact details stay private because there is no authentication.
func (h *SubmissionHandler) Track(c *gin.Context) {
	id := c.Param("id")

	sub, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "failed to load submission", "error", err, "submission_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         sub.ID,
		"status":     sub.Status,
		"created_at": sub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
