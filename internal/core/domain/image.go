package domain

import "github.com/google/uuid"

// NewImageName returns the unique object name uploaded images are stored under.
func NewImageName() string {
	return "uniq-" + uuid.NewString()
}
