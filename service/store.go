package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mvtechguy/faseyha-portal/config"
	"github.com/mvtechguy/faseyha-portal/model"
)

// ErrSubmissionNotFound is returned when a lookup misses
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionStore persists business submissions
type SubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore opens the database and migrates the submission table
func NewSubmissionStore(cfg *config.DatabaseConfig) (*SubmissionStore, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&model.Submission{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("submission store initialized", "path", cfg.Path)

	return &SubmissionStore{db: db}, nil
}

// Create inserts the submission and returns its generated ID
func (s *SubmissionStore) Create(ctx context.Context, sub *model.Submission) (string, error) {
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return "", fmt.Errorf("failed to create submission: %w", err)
	}
	return sub.ID, nil
}

// Get returns the submission with the given ID
func (s *SubmissionStore) Get(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}
	return &sub, nil
}

// Count returns the number of stored submissions
func (s *SubmissionStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Submission{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return count, nil
}
