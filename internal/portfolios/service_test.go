package portfolios

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"portfolio-backend/internal/generate"
)

func validRequest() PublishRequest {
	return PublishRequest{
		PersonalInfo: &generate.PersonalInfo{Name: "Jane Doe", Email: "jane@x.com"},
		Professional: &generate.Professional{Skills: "Go, SQL", Domain: "software_developer"},
		AIPortfolio: &generate.GeneratedPortfolio{
			Summary: "Go developer.",
			Skills:  []string{"Go", "SQL"},
		},
	}
}

func TestPublishAndRetrieve(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	published, err := svc.Publish(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(published.Code) != CodeLength {
		t.Fatalf("expected code of length %d, got %q", CodeLength, published.Code)
	}
	if published.Views != 0 {
		t.Fatalf("expected views 0, got %d", published.Views)
	}

	got, err := svc.GetByCode(context.Background(), published.Code)
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if got.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("expected stored name, got %q", got.PersonalInfo.Name)
	}
}

func TestPublishValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PublishRequest)
		field  string
	}{
		{"missing personalInfo", func(r *PublishRequest) { r.PersonalInfo = nil }, "personalInfo"},
		{"missing professional", func(r *PublishRequest) { r.Professional = nil }, "professional"},
		{"missing aiPortfolio", func(r *PublishRequest) { r.AIPortfolio = nil }, "aiPortfolio"},
		{"empty name", func(r *PublishRequest) { r.PersonalInfo.Name = "" }, "personalInfo.name"},
		{"whitespace name", func(r *PublishRequest) { r.PersonalInfo.Name = "   " }, "personalInfo.name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMemoryRepo()
			svc := NewService(repo)

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Publish(context.Background(), req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, validationErr.Field)
			}
			if repo.Len() != 0 {
				t.Fatalf("expected no insert on validation failure")
			}
		})
	}
}

func TestPublishTwiceProducesDistinctDocuments(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	first, err := svc.Publish(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("first Publish: %v", err)
	}
	second, err := svc.Publish(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("second Publish: %v", err)
	}

	if first.Code == second.Code {
		t.Fatalf("expected distinct codes, both %q", first.Code)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids")
	}
	if repo.Len() != 2 {
		t.Fatalf("expected two stored documents, got %d", repo.Len())
	}
}

func TestRetrievalIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	published, err := svc.Publish(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}

	first, err := svc.GetByCode(context.Background(), published.Code)
	if err != nil {
		t.Fatalf("first GetByCode: %v", err)
	}
	second, err := svc.GetByCode(context.Background(), published.Code)
	if err != nil {
		t.Fatalf("second GetByCode: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("retrieval mutated the document:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestGetByCodeUnknown(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.GetByCode(context.Background(), "zzzzzzz")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMetaFor(t *testing.T) {
	portfolio := PublishedPortfolio{
		PersonalInfo: generate.PersonalInfo{Name: "Jane Doe"},
		AIPortfolio:  generate.GeneratedPortfolio{Summary: "Go developer."},
	}
	meta := MetaFor(portfolio)
	if meta.Title != "Jane Doe | Portfolio" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
	if meta.Description != "Go developer." {
		t.Fatalf("unexpected description %q", meta.Description)
	}

	portfolio.AIPortfolio.Summary = "  "
	meta = MetaFor(portfolio)
	if meta.Description != "Jane Doe's portfolio" {
		t.Fatalf("expected fallback description, got %q", meta.Description)
	}
}
