package profile

import "time"

// Profile is the per-user row keyed by the authentication service's user ID.
// FullName doubles as the public display name and must be set before the
// user may review files.
type Profile struct {
	ID        string    `json:"id"` // auth user ID
	FullName  string    `json:"full_name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

func (p Profile) HasName() bool {
	return p.FullName != ""
}
