package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission represents one business-listing request
type Submission struct {
	ID             string `gorm:"primaryKey" json:"id"`
	SubmissionType string `gorm:"not null;default:quick" json:"submission_type"`
	Status         string `gorm:"not null;default:pending" json:"status"`

	// Business info (En required, Dv optional)
	BusinessNameEn string `gorm:"not null" json:"business_name_en"`
	BusinessNameDv string `json:"business_name_dv,omitempty"`
	Category       string `gorm:"not null" json:"category"`
	DescriptionEn  string `gorm:"not null" json:"description_en"`
	DescriptionDv  string `json:"description_dv,omitempty"`

	// Contact
	ContactPerson string `gorm:"not null" json:"contact_person"`
	Email         string `gorm:"not null" json:"email"`
	Phone         string `gorm:"not null" json:"phone"`
	Address       string `json:"address,omitempty"`
	Website       string `json:"website,omitempty"`

	// Registration
	RegistrationNumber   string `json:"registration_number,omitempty"`
	RegistrationDocument string `json:"registration_document,omitempty"`

	// Media and structured collateral, serialized at the store boundary
	Logo           string         `json:"logo,omitempty"`
	SocialMedia    datatypes.JSON `json:"social_media,omitempty"`
	AdditionalDocs datatypes.JSON `json:"additional_docs,omitempty"`
	OpeningHours   datatypes.JSON `json:"opening_hours,omitempty"`
	Services       datatypes.JSON `json:"services,omitempty"`
	FAQs           datatypes.JSON `json:"faqs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Submission) TableName() string {
	return "business_submissions"
}

// BeforeCreate assigns the submission ID exactly once, at insert time
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// Submission type constants
const (
	TypeQuick    = "quick"
	TypeDetailed = "detailed"
)

// Submission status constants
const (
	StatusPending = "pending"
)

// Categories is the fixed list of business categories the intake forms offer
var Categories = []string{
	"Restaurant",
	"Hotel & Accommodation",
	"Retail & Shopping",
	"Healthcare",
	"Education",
	"Technology",
	"Professional Services",
	"Entertainment",
	"Transportation",
	"Construction",
	"Real Estate",
	"Tourism",
	"Other",
}

// SocialMediaLinks decodes the stored social media column, or nil if unset
func (s *Submission) SocialMediaLinks() (*SocialMedia, error) {
	if len(s.SocialMedia) == 0 {
		return nil, nil
	}
	var links SocialMedia
	if err := json.Unmarshal(s.SocialMedia, &links); err != nil {
		return nil, err
	}
	return &links, nil
}

// OpeningHoursData decodes the stored opening hours column, or nil if unset
func (s *Submission) OpeningHoursData() (OpeningHours, error) {
	if len(s.OpeningHours) == 0 {
		return nil, nil
	}
	var hours OpeningHours
	if err := json.Unmarshal(s.OpeningHours, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

// ServiceList decodes the stored services column, or nil if unset
func (s *Submission) ServiceList() ([]string, error) {
	if len(s.Services) == 0 {
		return nil, nil
	}
	var services []string
	if err := json.Unmarshal(s.Services, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FAQList decodes the stored FAQs column, or nil if unset
func (s *Submission) FAQList() ([]FAQ, error) {
	if len(s.FAQs) == 0 {
		return nil, nil
	}
	var faqs []FAQ
	if err := json.Unmarshal(s.FAQs, &faqs); err != nil {
		return nil, err
	}
	return faqs, nil
}

// AdditionalDocList decodes the stored additional documents column, or nil if unset
func (s *Submission) AdditionalDocList() ([]string, error) {
	if len(s.AdditionalDocs) == 0 {
		return nil, nil
	}
	var docs []string
	if err := json.Unmarshal(s.AdditionalDocs, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
