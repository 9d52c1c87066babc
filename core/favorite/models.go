package favorite

import "time"

// EntityType names what kind of row a favorite points at.
type EntityType string

const (
	EntityCollege    EntityType = "college"
	EntityDepartment EntityType = "department"
	EntitySemester   EntityType = "semester"
	EntitySubject    EntityType = "subject"
	EntityFile       EntityType = "file"
)

func (t EntityType) Valid() bool {
	switch t {
	case EntityCollege, EntityDepartment, EntitySemester, EntitySubject, EntityFile:
		return true
	}
	return false
}

// Favorite is a per-user bookmark. At most one row may exist per
// (user, entity type, entity id); toggling creates and deletes it.
type Favorite struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	CreatedAt  time.Time  `json:"created_at"` // UTC
}
