package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MinProductionYear    = 1850
	MinActorAge          = 0
	MaxActorAge          = 200
	MaxDescriptionLength = 50
)

var imageExtensions = []string{"jpg", "jpeg", "png"}

// ValidateImage accepts a non-empty image reference that mentions one of the
// supported picture formats and returns it unchanged.
func ValidateImage(image string) (string, error) {
	if image == "" {
		return "", invalid("image", ErrInvalidImage)
	}
	for _, ext := range imageExtensions {
		if strings.Contains(image, ext) {
			return image, nil
		}
	}
	return "", invalid("image", ErrInvalidImage)
}

// ValidateYear accepts any year strictly after 1850.
func ValidateYear(year int) (int, error) {
	if year <= MinProductionYear {
		return 0, invalid("year", ErrInvalidYear)
	}
	return year, nil
}

// ValidateAge accepts ages in the closed range [0, 200].
func ValidateAge(age int) (int, error) {
	if age < MinActorAge || age > MaxActorAge {
		return 0, invalid("age", ErrInvalidAge)
	}
	return age, nil
}

// ValidateLength accepts running times of at least one minute.
func ValidateLength(length int) (int, error) {
	if length <= 0 {
		return 0, invalid("length", ErrInvalidLength)
	}
	return length, nil
}

func validateRequired(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", invalid(field, ErrRequiredField)
	}
	return value, nil
}

func validateDescription(description string) (string, error) {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", invalid("description", ErrDescriptionTooLong)
	}
	return description, nil
}
