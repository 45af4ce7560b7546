package handler

import (
	"errors"
	"testing"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&createRoleRequest{RoleName: "Neo", ActorID: "a1"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "production_id" {
		t.Fatalf("expected json field name, got %q", verr.Field)
	}
}

func TestValidator_OptionalPointers(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&updateProductionRequest{}); err != nil {
		t.Fatalf("empty patch should validate: %v", err)
	}

	year := 1851
	if err := v.Validate(&updateProductionRequest{Year: &year}); err != nil {
		t.Fatalf("1851 should be accepted: %v", err)
	}

	year = 1850
	if err := v.Validate(&updateProductionRequest{Year: &year}); !errors.Is(err, domain.ErrInvalidYear) {
		t.Fatalf("expected ErrInvalidYear, got %v", err)
	}
}

func TestValidator_ImageMatchesDomainRule(t *testing.T) {
	v := NewValidator()
	for _, image := range []string{"a.jpg", "b.jpeg", "c.png", "https://cdn.test/png/poster"} {
		if err := v.Validate(&createActorRequest{Name: "A", Image: image}); err != nil {
			t.Fatalf("%q should be accepted: %v", image, err)
		}
	}
	if err := v.Validate(&createActorRequest{Name: "A", Image: "a.gif"}); !errors.Is(err, domain.ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
}

func TestValidator_LengthMatchesDomainRule(t *testing.T) {
	v := NewValidator()
	length := 0
	err := v.Validate(&createProductionRequest{Title: "T", Image: "t.png", Length: &length})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "length" || !errors.Is(err, domain.ErrInvalidLength) {
		t.Fatalf("expected length ValidationError, got %v", err)
	}

	length = 95
	if err := v.Validate(&createProductionRequest{Title: "T", Image: "t.png", Length: &length}); err != nil {
		t.Fatalf("95 should be accepted: %v", err)
	}
}
