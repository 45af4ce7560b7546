package domain

import (
	"errors"
	"testing"
	"time"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestNewProduction_Valid(t *testing.T) {
	now := time.Now().UTC()
	p, err := NewProduction(ProductionFields{
		Title:       "Hamlet",
		Genre:       "Drama",
		Length:      intPtr(240),
		Year:        intPtr(1990),
		Image:       "hamlet.png",
		Description: "To be or not to be",
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "Hamlet" || *p.Year != 1990 || p.Image != "hamlet.png" {
		t.Fatalf("unexpected production: %+v", p)
	}
	if !p.CreatedAt.Equal(now) || !p.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps not set")
	}
}

func TestNewProduction_Rejections(t *testing.T) {
	base := func() ProductionFields {
		return ProductionFields{Title: "Cats", Image: "cats.jpg"}
	}

	cases := map[string]struct {
		mutate func(*ProductionFields)
		want   error
	}{
		"missing title":    {func(f *ProductionFields) { f.Title = "  " }, ErrRequiredField},
		"empty image":      {func(f *ProductionFields) { f.Image = "" }, ErrInvalidImage},
		"gif image":        {func(f *ProductionFields) { f.Image = "cats.gif" }, ErrInvalidImage},
		"year 1850":        {func(f *ProductionFields) { f.Year = intPtr(1850) }, ErrInvalidYear},
		"zero length":      {func(f *ProductionFields) { f.Length = intPtr(0) }, ErrInvalidLength},
		"negative length":  {func(f *ProductionFields) { f.Length = intPtr(-90) }, ErrInvalidLength},
		"long description": {func(f *ProductionFields) { f.Description = string(make([]byte, 51)) }, ErrDescriptionTooLong},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := base()
			tc.mutate(&f)
			p, err := NewProduction(f, time.Now())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if p != nil {
				t.Fatalf("expected no production on rejection")
			}
		})
	}
}

func TestProduction_Apply_RejectedPatchLeavesStateUntouched(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewProduction(ProductionFields{Title: "Cats", Image: "cats.jpg", Year: intPtr(1981)}, created)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	before := *p

	err = p.Apply(ProductionPatch{
		Title: strPtr("Cats: The Return"),
		Year:  intPtr(1700),
	}, created.Add(time.Hour))
	if !errors.Is(err, ErrInvalidYear) {
		t.Fatalf("expected ErrInvalidYear, got %v", err)
	}
	if p.Title != before.Title || *p.Year != *before.Year || !p.UpdatedAt.Equal(before.UpdatedAt) {
		t.Fatalf("production mutated by rejected patch: %+v", p)
	}
}

func TestProduction_Apply_RejectsNonPositiveLength(t *testing.T) {
	p, _ := NewProduction(ProductionFields{Title: "Cats", Image: "cats.jpg", Length: intPtr(120)}, time.Now())

	if err := p.Apply(ProductionPatch{Length: intPtr(-1)}, time.Now()); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if *p.Length != 120 {
		t.Fatalf("length changed by rejected patch: %d", *p.Length)
	}
}

func TestProduction_Apply_CommitsValidPatch(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, _ := NewProduction(ProductionFields{Title: "Cats", Image: "cats.jpg"}, created)

	later := created.Add(time.Hour)
	if err := p.Apply(ProductionPatch{Image: strPtr("cats2.jpeg"), Year: intPtr(1851), Genre: strPtr("Musical")}, later); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Image != "cats2.jpeg" || *p.Year != 1851 || p.Genre != "Musical" {
		t.Fatalf("patch not applied: %+v", p)
	}
	if !p.UpdatedAt.Equal(later) || !p.CreatedAt.Equal(created) {
		t.Fatalf("unexpected timestamps: created=%v updated=%v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestNewActor(t *testing.T) {
	a, err := NewActor(ActorFields{Name: "Judi Dench", Image: "judi.jpg", Age: intPtr(200)}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a.Age != 200 {
		t.Fatalf("unexpected age %d", *a.Age)
	}

	if _, err := NewActor(ActorFields{Name: "Old", Image: "old.jpg", Age: intPtr(201)}, time.Now()); !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge, got %v", err)
	}
	if _, err := NewActor(ActorFields{Name: "Young", Image: "young.jpg", Age: intPtr(-1)}, time.Now()); !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge, got %v", err)
	}
	if _, err := NewActor(ActorFields{Name: "NoFace", Image: ""}, time.Now()); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
}

func TestActor_Apply(t *testing.T) {
	a, _ := NewActor(ActorFields{Name: "Ian", Image: "ian.png", Age: intPtr(80)}, time.Now())

	if err := a.Apply(ActorPatch{Age: intPtr(250), Country: strPtr("UK")}, time.Now()); !errors.Is(err, ErrInvalidAge) {
		t.Fatalf("expected ErrInvalidAge, got %v", err)
	}
	if *a.Age != 80 || a.Country != "" {
		t.Fatalf("actor mutated by rejected patch: %+v", a)
	}

	if err := a.Apply(ActorPatch{Age: intPtr(81), Country: strPtr("UK")}, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a.Age != 81 || a.Country != "UK" {
		t.Fatalf("patch not applied: %+v", a)
	}
}

func TestNewRole(t *testing.T) {
	r, err := NewRole("Hamlet", "p1", "a1", time.Now())
	if err != nil || r.RoleName != "Hamlet" {
		t.Fatalf("NewRole = %+v, %v", r, err)
	}

	_, err = NewRole("", "p1", "a1", time.Now())
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "role_name" {
		t.Fatalf("expected role_name validation error, got %v", err)
	}

	if _, err := NewRole("Ophelia", "", "a1", time.Now()); !errors.Is(err, ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField, got %v", err)
	}
}
