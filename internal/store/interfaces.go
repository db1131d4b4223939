package store

import (
	"context"
	"errors"

	"crewbase.app/org-server/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a uniqueness violation, e.g. a membership that
	// already exists for an (org, user) pair.
	ErrConflict = errors.New("conflict")
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

type SessionStore interface {
	// GetValid returns the session only if it has not expired.
	GetValid(ctx context.Context, id int64) (*model.Session, error)
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
}

type MembershipStore interface {
	GetByOrgAndUser(ctx context.Context, orgID, userID int64) (*model.Membership, error)
	ListByOrg(ctx context.Context, orgID int64) ([]model.Membership, error)
	Create(ctx context.Context, m *model.Membership) error
	// UpdateOnboarding sets the profile fields on an existing membership and
	// moves it to active, or to pending_approval when the membership was
	// created from an invite that requires approval. Returns ErrNotFound if
	// no membership exists for the pair; it never creates one.
	UpdateOnboarding(ctx context.Context, orgID, userID int64, fullName, phone string) (*model.Membership, error)
	// Approve forces an existing membership to active and records the
	// approver. Returns ErrNotFound if no membership exists for the pair.
	Approve(ctx context.Context, orgID, userID, approvedBy int64) (*model.Membership, error)
}

type InviteStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invite, error)
	ListByOrg(ctx context.Context, orgID int64) ([]model.Invite, error)
	Create(ctx context.Context, invite *model.Invite) error
	// Consume deletes the invite and returns it. Exactly one caller can
	// consume a given invite; later callers get ErrNotFound.
	Consume(ctx context.Context, id int64) (*model.Invite, error)
}

// StoreProvider hands out the entity stores sharing one underlying
// connection or transaction.
type StoreProvider interface {
	Users() UserStore
	Sessions() SessionStore
	Organizations() OrganizationStore
	Memberships() MembershipStore
	Invites() InviteStore
}

// TxRunner runs fn inside a single database transaction. All stores obtained
// from the provider passed to fn operate on that transaction; the commit is
// all-or-nothing.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}
