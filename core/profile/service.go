package profile

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
)

var ErrNotFound = errors.New("profile not found")

type (
	Repository interface {
		CreateProfile(ctx context.Context, p Profile) (Profile, error)
		GetProfileByUserID(ctx context.Context, userID string) (Profile, error)
		QueryProfilesByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
		UpdateProfile(ctx context.Context, p Profile) (Profile, error)

		// Admin set membership; presence of a row marks an administrator.
		IsAdmin(ctx context.Context, userID string) (bool, error)
		CreateAdmin(ctx context.Context, userID string) error
		DeleteAdmin(ctx context.Context, userID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureProfile returns the caller's profile, creating the row on first
// sight. The hosted original does this with a database trigger on sign-up;
// here it happens lazily on the first authenticated request.
func (svc *Service) EnsureProfile(ctx context.Context, ident core.Identity) (Profile, error) {
	if !ident.Authenticated() {
		return Profile{}, core.ErrAuthRequired
	}

	p, err := svc.repo.GetProfileByUserID(ctx, ident.UserID)
	switch errors.Cause(err) {
	case nil:
		return p, nil
	case ErrNotFound:
		now := time.Now().UTC()
		p = Profile{
			ID:        ident.UserID,
			Email:     core.CleanString(ident.Email, true /* lower */),
			CreatedAt: now,
			UpdatedAt: now,
		}
		p, err = svc.repo.CreateProfile(ctx, p)
		return p, errors.Wrap(err, "creating profile")
	default:
		return Profile{}, errors.Wrap(err, "getting profile")
	}
}

func (svc *Service) Get(ctx context.Context, actor core.Identity) (Profile, error) {
	if !actor.Authenticated() {
		return Profile{}, core.ErrAuthRequired
	}
	return svc.repo.GetProfileByUserID(ctx, actor.UserID)
}

// SetFullName updates the actor's own display name.
func (svc *Service) SetFullName(ctx context.Context, actor core.Identity, name string) (Profile, error) {
	if err := core.Allow(actor, core.ActionSetDisplayName); err != nil {
		return Profile{}, err
	}
	name = core.CleanString(name)
	if name == "" {
		return Profile{}, core.NewValidationError(nil, core.FieldError{Field: "full_name", Error: "this field is required"})
	}

	p, err := svc.EnsureProfile(ctx, actor)
	if err != nil {
		return Profile{}, err
	}
	p.FullName = name
	p.UpdatedAt = time.Now().UTC()
	p, err = svc.repo.UpdateProfile(ctx, p)
	return p, errors.Wrap(err, "updating profile")
}

// Names resolves user IDs to display names. IDs without a profile, or with
// a blank name, are absent from the result.
func (svc *Service) Names(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}
	profiles, err := svc.repo.QueryProfilesByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "querying profiles")
	}

	names := make(map[string]string, len(profiles))
	for _, p := range profiles {
		if p.HasName() {
			names[p.ID] = p.FullName
		}
	}
	return names, nil
}

// IsAdmin checks membership in the admin set; it is not a role hierarchy.
func (svc *Service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return svc.repo.IsAdmin(ctx, userID)
}

// GrantAdmin and RevokeAdmin are operator actions, reachable from the admin
// command line only.

func (svc *Service) GrantAdmin(ctx context.Context, userID string) error {
	isAdmin, err := svc.repo.IsAdmin(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "checking admin membership")
	}
	if isAdmin {
		return nil
	}
	return errors.Wrap(svc.repo.CreateAdmin(ctx, userID), "creating admin row")
}

func (svc *Service) RevokeAdmin(ctx context.Context, userID string) error {
	return errors.Wrap(svc.repo.DeleteAdmin(ctx, userID), "deleting admin row")
}
