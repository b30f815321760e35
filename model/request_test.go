package model

import (
	"errors"
	"reflect"
	"testing"
)

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		BusinessNameEn: "Cafe X",
		Category:       "Restaurant",
		DescriptionEn:  "Coffee shop",
		ContactPerson:  "A. Rashid",
		Email:          "a@x.com",
		Phone:          "+9607777777",
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		clear func(*SubmitRequest)
		field string
	}{
		{"missing business name", func(r *SubmitRequest) { r.BusinessNameEn = "" }, "businessNameEn"},
		{"missing category", func(r *SubmitRequest) { r.Category = "" }, "category"},
		{"missing description", func(r *SubmitRequest) { r.DescriptionEn = "" }, "descriptionEn"},
		{"missing contact person", func(r *SubmitRequest) { r.ContactPerson = "" }, "contactPerson"},
		{"missing email", func(r *SubmitRequest) { r.Email = "" }, "email"},
		{"missing phone", func(r *SubmitRequest) { r.Phone = "" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.clear(req)

			err := req.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("Expected MissingFieldError, got %T", err)
			}
			if missing.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, missing.Field)
			}

			expected := "Missing required field: " + tt.field
			if err.Error() != expected {
				t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
			}
		})
	}
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	// Everything empty: businessNameEn is declared first, so it wins
	req := &SubmitRequest{}
	err := req.Validate()

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingFieldError, got %T", err)
	}
	if missing.Field != "businessNameEn" {
		t.Errorf("Expected first field 'businessNameEn', got '%s'", missing.Field)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple address", "a@x.com", true},
		{"subdomain", "user@mail.example.mv", true},
		{"plus tag", "user+tag@example.com", true},
		{"no at sign", "not-an-email", false},
		{"no domain dot", "user@localhost", false},
		{"space in local part", "us er@example.com", false},
		{"space in domain", "user@exa mple.com", false},
		{"missing local part", "@example.com", false},
		{"missing tld", "user@example.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Email = tt.email

			err := req.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid email, got error: %v", err)
			}
			if !tt.valid {
				if !errors.Is(err, ErrInvalidEmail) {
					t.Errorf("Expected ErrInvalidEmail, got %v", err)
				}
				if err.Error() != "Invalid email address" {
					t.Errorf("Unexpected message: %s", err.Error())
				}
			}
		})
	}
}

func TestValidateIsSideEffectFree(t *testing.T) {
	req := validRequest()
	before := *req

	if err := req.Validate(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reflect.DeepEqual(*req, before) {
		t.Error("Validate modified the request")
	}
}

func TestSubmissionDefaults(t *testing.T) {
	req := validRequest()

	sub, err := req.Submission()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sub.SubmissionType != TypeQuick {
		t.Errorf("Expected default type '%s', got '%s'", TypeQuick, sub.SubmissionType)
	}
	if sub.Status != StatusPending {
		t.Errorf("Expected status '%s', got '%s'", StatusPending, sub.Status)
	}

	// Absent optional fields stay empty, absent structures stay nil
	if sub.BusinessNameDv != "" || sub.Address != "" || sub.Website != "" {
		t.Error("Expected optional text fields to be empty")
	}
	if sub.SocialMedia != nil || sub.OpeningHours != nil || sub.Services != nil || sub.FAQs != nil || sub.AdditionalDocs != nil {
		t.Error("Expected absent structured fields to be nil")
	}
}

func TestSubmissionTypeKept(t *testing.T) {
	req := validRequest()
	req.SubmissionType = TypeDetailed

	sub, err := req.Submission()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sub.SubmissionType != TypeDetailed {
		t.Errorf("Expected type '%s', got '%s'", TypeDetailed, sub.SubmissionType)
	}
}

func TestSubmissionStructuredRoundTrip(t *testing.T) {
	req := validRequest()
	req.SubmissionType = TypeDetailed
	req.SocialMedia = &SocialMedia{Facebook: "fb.com/cafex", Instagram: "@cafex"}
	req.OpeningHours = OpeningHours{
		"Monday": {Open: "09:00", Close: "17:00"},
		"Sunday": {Closed: true},
	}
	req.Services = []string{"Dine-in", "Takeaway"}
	req.FAQs = []FAQ{{Question: "Do you deliver?", Answer: "Yes, islandwide."}}
	req.AdditionalDocs = []string{"/uploads/business/menu_1_a.pdf"}

	sub, err := req.Submission()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	links, err := sub.SocialMediaLinks()
	if err != nil {
		t.Fatalf("Failed to decode social media: %v", err)
	}
	if links.Facebook != "fb.com/cafex" || links.Instagram != "@cafex" {
		t.Errorf("Social media round trip mismatch: %+v", links)
	}

	hours, err := sub.OpeningHoursData()
	if err != nil {
		t.Fatalf("Failed to decode opening hours: %v", err)
	}
	if hours["Monday"].Open != "09:00" || !hours["Sunday"].Closed {
		t.Errorf("Opening hours round trip mismatch: %+v", hours)
	}

	services, err := sub.ServiceList()
	if err != nil {
		t.Fatalf("Failed to decode services: %v", err)
	}
	if len(services) != 2 || services[0] != "Dine-in" {
		t.Errorf("Services round trip mismatch: %v", services)
	}

	faqs, err := sub.FAQList()
	if err != nil {
		t.Fatalf("Failed to decode faqs: %v", err)
	}
	if len(faqs) != 1 || faqs[0].Question != "Do you deliver?" {
		t.Errorf("FAQ round trip mismatch: %v", faqs)
	}

	docs, err := sub.AdditionalDocList()
	if err != nil {
		t.Fatalf("Failed to decode additional docs: %v", err)
	}
	if len(docs) != 1 || docs[0] != "/uploads/business/menu_1_a.pdf" {
		t.Errorf("Additional docs round trip mismatch: %v", docs)
	}
}

func TestSubmissionIgnoresCallerStatus(t *testing.T) {
	// The writer forces pending; the wire payload has no status field at
	// all, so a crafted body cannot change the initial state either.
	req := validRequest()
	sub, err := req.Submission()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sub.Status != StatusPending {
		t.Errorf("Expected '%s', got '%s'", StatusPending, sub.Status)
	}
}
