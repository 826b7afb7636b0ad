package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace profile created at first login or registration.
// This layer does not enforce email uniqueness.
type User struct {
	ID        uuid.UUID // The unique identifier for the profile.
	Email     string    // The user's contact email, doubling as the identity claim.
	Name      string    // The user's display name.
	PhotoURL  string    // Avatar link.
	CreatedAt time.Time // Timestamp of when this profile was created.
}
