package core

// Identity describes the caller of an operation as established by the
// authentication layer. The zero value is an anonymous caller.
//
// Admin reflects membership in the admins table, resolved per request by the
// API layer; it is never taken from the session token.
type Identity struct {
	UserID string
	Email  string
	Admin  bool
}

func (id Identity) Authenticated() bool {
	return id.UserID != ""
}

// Action names a capability from the access matrix.
type Action int

const (
	ActionUploadFile Action = iota + 1
	ActionDeleteFile
	ActionToggleFavorite
	ActionSubmitReview
	ActionSubmitReport
	ActionSetDisplayName
)

// Allow evaluates the capability matrix for the given actor and action.
// Reads are public and never pass through here. Every mutating service
// method must call Allow before touching the stores.
func Allow(actor Identity, action Action) error {
	switch action {
	case ActionSubmitReport:
		return nil // anonymous reports permitted
	case ActionDeleteFile:
		if !actor.Authenticated() {
			return ErrAuthRequired
		}
		if !actor.Admin {
			return ErrPermissionDenied
		}
		return nil
	case ActionUploadFile, ActionToggleFavorite, ActionSubmitReview, ActionSetDisplayName:
		if !actor.Authenticated() {
			return ErrAuthRequired
		}
		return nil
	}
	return ErrPermissionDenied
}
