package domain

import "github.com/google/uuid"

// CheckID returns ErrNotFound for ids that can't name a stored resource.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}
