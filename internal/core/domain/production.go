package domain

import "time"

// Production is a show or film in the catalog. Its cast is reached through
// roles.
type Production struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre,omitempty"`
	Length      *int      `json:"length,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Image       string    `json:"image"`
	Language    string    `json:"language,omitempty"`
	Director    string    `json:"director,omitempty"`
	Description string    `json:"description,omitempty"`
	Composer    string    `json:"composer,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ProductionFields carries the values for a new production.
type ProductionFields struct {
	Title       string
	Genre       string
	Length      *int
	Year        *int
	Image       string
	Language    string
	Director    string
	Description string
	Composer    string
}

// ProductionPatch carries a partial update. Nil fields are left untouched.
type ProductionPatch struct {
	Title       *string
	Genre       *string
	Length      *int
	Year        *int
	Image       *string
	Language    *string
	Director    *string
	Description *string
	Composer    *string
}

// NewProduction validates f and returns a production stamped with now.
func NewProduction(f ProductionFields, now time.Time) (*Production, error) {
	title, err := validateRequired("title", f.Title)
	if err != nil {
		return nil, err
	}
	image, err := ValidateImage(f.Image)
	if err != nil {
		return nil, err
	}
	var length *int
	if f.Length != nil {
		l, err := ValidateLength(*f.Length)
		if err != nil {
			return nil, err
		}
		length = &l
	}
	var year *int
	if f.Year != nil {
		y, err := ValidateYear(*f.Year)
		if err != nil {
			return nil, err
		}
		year = &y
	}
	description, err := validateDescription(f.Description)
	if err != nil {
		return nil, err
	}

	return &Production{
		Title:       title,
		Genre:       f.Genre,
		Length:      length,
		Year:        year,
		Image:       image,
		Language:    f.Language,
		Director:    f.Director,
		Description: description,
		Composer:    f.Composer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply validates every field present in patch and, only if all of them are
// accepted, writes them to p. A rejected patch leaves p unchanged.
func (p *Production) Apply(patch ProductionPatch, now time.Time) error {
	next := *p

	if patch.Title != nil {
		title, err := validateRequired("title", *patch.Title)
		if err != nil {
			return err
		}
		next.Title = title
	}
	if patch.Image != nil {
		image, err := ValidateImage(*patch.Image)
		if err != nil {
			return err
		}
		next.Image = image
	}
	if patch.Year != nil {
		year, err := ValidateYear(*patch.Year)
		if err != nil {
			return err
		}
		next.Year = &year
	}
	if patch.Description != nil {
		description, err := validateDescription(*patch.Description)
		if err != nil {
			return err
		}
		next.Description = description
	}
	if patch.Length != nil {
		length, err := ValidateLength(*patch.Length)
		if err != nil {
			return err
		}
		next.Length = &length
	}
	if patch.Genre != nil {
		next.Genre = *patch.Genre
	}
	if patch.Language != nil {
		next.Language = *patch.Language
	}
	if patch.Director != nil {
		next.Director = *patch.Director
	}
	if patch.Composer != nil {
		next.Composer = *patch.Composer
	}

	next.UpdatedAt = now
	*p = next
	return nil
}
