package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// SocialMedia holds the optional social links of a listing
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// DayHours describes one day's opening window
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OpeningHours maps a day name to its hours
type OpeningHours map[string]DayHours

// FAQ is one question/answer pair
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SubmitRequest is the wire payload of POST /api/submit. Both the quick and
// the detailed form produce this shape; they differ only in which optional
// fields are populated.
type SubmitRequest struct {
	SubmissionType string `json:"submissionType"`

	BusinessNameEn string `json:"businessNameEn"`
	BusinessNameDv string `json:"businessNameDv"`
	Category       string `json:"category"`
	DescriptionEn  string `json:"descriptionEn"`
	DescriptionDv  string `json:"descriptionDv"`

	ContactPerson string       `json:"contactPerson"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	Website       string       `json:"website"`
	SocialMedia   *SocialMedia `json:"socialMedia"`

	RegistrationNumber   string `json:"registrationNumber"`
	RegistrationDocument string `json:"registrationDocument"`

	Logo           string       `json:"logo"`
	AdditionalDocs []string     `json:"additionalDocs"`
	OpeningHours   OpeningHours `json:"openingHours"`
	Services       []string     `json:"services"`
	FAQs           []FAQ        `json:"faqs"`
}

// MissingFieldError reports the first required field found empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// ErrInvalidEmail reports an email that fails the shape check
var ErrInvalidEmail = errors.New("Invalid email address")

// emailPattern is a deliberately permissive local@domain.tld shape check.
// No DNS or mailbox verification happens here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredFields lists the mandatory payload fields in the order they are
// checked. Validation stops at the first empty one.
var requiredFields = []struct {
	name  string
	value func(*SubmitRequest) string
}{
	{"businessNameEn", func(r *SubmitRequest) string { return r.BusinessNameEn }},
	{"category", func(r *SubmitRequest) string { return r.Category }},
	{"descriptionEn", func(r *SubmitRequest) string { return r.DescriptionEn }},
	{"contactPerson", func(r *SubmitRequest) string { return r.ContactPerson }},
	{"email", func(r *SubmitRequest) string { return r.Email }},
	{"phone", func(r *SubmitRequest) string { return r.Phone }},
}

// Validate checks required fields and the email shape. It has no side
// effects and reports only the first violation.
func (r *SubmitRequest) Validate() error {
	for _, f := range requiredFields {
		if f.value(r) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// Submission normalizes the validated request into the store shape.
// Optional structured fields are serialized only when present; the
// submission type defaults to quick and the status is always pending, no
// matter what the caller sent.
func (r *SubmitRequest) Submission() (*Submission, error) {
	sub := &Submission{
		SubmissionType: r.SubmissionType,
		Status:         StatusPending,

		BusinessNameEn: r.BusinessNameEn,
		BusinessNameDv: r.BusinessNameDv,
		Category:       r.Category,
		DescriptionEn:  r.DescriptionEn,
		DescriptionDv:  r.DescriptionDv,

		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Website:       r.Website,

		RegistrationNumber:   r.RegistrationNumber,
		RegistrationDocument: r.RegistrationDocument,
		Logo:                 r.Logo,
	}

	if sub.SubmissionType == "" {
		sub.SubmissionType = TypeQuick
	}

	if r.SocialMedia != nil {
		data, err := json.Marshal(r.SocialMedia)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize social media: %w", err)
		}
		sub.SocialMedia = data
	}
	if len(r.AdditionalDocs) > 0 {
		data, err := json.Marshal(r.AdditionalDocs)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize additional docs: %w", err)
		}
		sub.AdditionalDocs = data
	}
	if len(r.OpeningHours) > 0 {
		data, err := json.Marshal(r.OpeningHours)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize opening hours: %w", err)
		}
		sub.OpeningHours = data
	}
	if len(r.Services) > 0 {
		data, err := json.Marshal(r.Services)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize services: %w", err)
		}
		sub.Services = data
	}
	if len(r.FAQs) > 0 {
		data, err := json.Marshal(r.FAQs)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize faqs: %w", err)
		}
		sub.FAQs = data
	}

	return sub, nil
}
