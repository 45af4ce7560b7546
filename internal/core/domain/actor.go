package domain

import "time"

// Actor is a performer who can be cast in many productions.
type Actor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Age       *int      `json:"age,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type ActorFields struct {
	Name    string
	Image   string
	Age     *int
	Country string
}

type ActorPatch struct {
	Name    *string
	Image   *string
	Age     *int
	Country *string
}

// NewActor validates f and returns an actor stamped with now.
func NewActor(f ActorFields, now time.Time) (*Actor, error) {
	name, err := validateRequired("name", f.Name)
	if err != nil {
		return nil, err
	}
	image, err := ValidateImage(f.Image)
	if err != nil {
		return nil, err
	}
	var age *int
	if f.Age != nil {
		a, err := ValidateAge(*f.Age)
		if err != nil {
			return nil, err
		}
		age = &a
	}

	return &Actor{
		Name:      name,
		Image:     image,
		Age:       age,
		Country:   f.Country,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply commits patch to a only when every present field validates.
func (a *Actor) Apply(patch ActorPatch, now time.Time) error {
	next := *a

	if patch.Name != nil {
		name, err := validateRequired("name", *patch.Name)
		if err != nil {
			return err
		}
		next.Name = name
	}
	if patch.Image != nil {
		image, err := ValidateImage(*patch.Image)
		if err != nil {
			return err
		}
		next.Image = image
	}
	if patch.Age != nil {
		age, err := ValidateAge(*patch.Age)
		if err != nil {
			return err
		}
		next.Age = &age
	}
	if patch.Country != nil {
		next.Country = *patch.Country
	}

	next.UpdatedAt = now
	*a = next
	return nil
}
