package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crewbase.app/org-server/common/id"
	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/store"
)

type InviteService interface {
	Create(ctx context.Context, caller Identity, params CreateInviteParams) (*model.Invite, error)
	Accept(ctx context.Context, caller Identity, inviteID int64) (*model.Membership, error)
	List(ctx context.Context, caller Identity, orgID int64) ([]model.Invite, error)
}

type CreateInviteParams struct {
	Email            string
	Role             model.Role
	OrgID            int64
	RequiresApproval bool
}

type inviteService struct {
	stores store.StoreProvider
	tx     store.TxRunner
}

func NewInviteService(stores store.StoreProvider, tx store.TxRunner) InviteService {
	return &inviteService{
		stores: stores,
		tx:     tx,
	}
}

// Create records a pending invite for an email to join the org. Only owners
// and admins may invite, and only admin or staff roles can be offered.
// Duplicate pending invites to the same email are allowed.
func (s *inviteService) Create(ctx context.Context, caller Identity, params CreateInviteParams) (*model.Invite, error) {
	email := strings.TrimSpace(params.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}
	if params.Role != model.RoleAdmin && params.Role != model.RoleStaff {
		return nil, fmt.Errorf("%w: role must be admin or staff", ErrInvalidArgument)
	}

	if _, err := requireRole(ctx, s.stores.Memberships(), params.OrgID, caller.UserID,
		model.RoleOwner, model.RoleAdmin); err != nil {
		return nil, err
	}

	// Inviting someone who already holds a membership is pointless; their
	// acceptance would only fail later. Unknown emails are fine — the user
	// may not have signed up yet.
	if existing, err := s.stores.Users().GetByEmail(ctx, email); err == nil {
		if _, err := s.stores.Memberships().GetByOrgAndUser(ctx, params.OrgID, existing.ID); err == nil {
			return nil, fmt.Errorf("%w: already a member of this organization", ErrConflict)
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("checking existing membership: %w", err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up invited user: %w", err)
	}

	invite := &model.Invite{
		ID:               id.New(),
		OrgID:            params.OrgID,
		Email:            email,
		Role:             params.Role,
		Status:           model.InviteStatusPending,
		RequiresApproval: params.RequiresApproval,
		InvitedBy:        caller.UserID,
	}

	if err := s.stores.Invites().Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("creating invite: %w", err)
	}

	slog.InfoContext(ctx, "invite created",
		"invite_id", invite.ID,
		"org_id", invite.OrgID,
		"role", invite.Role,
		"invited_by", caller.UserID,
	)

	return invite, nil
}

// List returns the org's pending invites. Owners and admins only.
func (s *inviteService) List(ctx context.Context, caller Identity, orgID int64) ([]model.Invite, error) {
	if _, err := requireRole(ctx, s.stores.Memberships(), orgID, caller.UserID,
		model.RoleOwner, model.RoleAdmin); err != nil {
		return nil, err
	}

	invites, err := s.stores.Invites().ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing invites: %w", err)
	}
	return invites, nil
}

// Accept converts an invite into a membership. The invite is consumed and
// the membership created in one transaction, so concurrent acceptances of
// the same invite yield exactly one membership; losers see ErrNotFound. An
// email mismatch rolls the consume back, leaving the invite intact.
func (s *inviteService) Accept(ctx context.Context, caller Identity, inviteID int64) (*model.Membership, error) {
	var created *model.Membership

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		invite, err := stores.Invites().Consume(ctx, inviteID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: invite", ErrNotFound)
			}
			return fmt.Errorf("consuming invite: %w", err)
		}

		if !strings.EqualFold(invite.Email, caller.Email) {
			// Returning an error aborts the transaction, so the invite
			// survives a mismatched acceptance attempt.
			return fmt.Errorf("%w: invite was issued to a different email", ErrPermissionDenied)
		}

		m := &model.Membership{
			ID:               id.New(),
			OrgID:            invite.OrgID,
			UserID:           caller.UserID,
			Email:            invite.Email,
			Role:             invite.Role,
			Status:           model.MemberStatusPendingOnboarding,
			RequiresApproval: invite.RequiresApproval,
		}

		if err := stores.Memberships().Create(ctx, m); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return fmt.Errorf("%w: already a member of this organization", ErrConflict)
			}
			return fmt.Errorf("creating membership: %w", err)
		}

		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invite accepted",
		"invite_id", inviteID,
		"org_id", created.OrgID,
		"user_id", caller.UserID,
		"role", created.Role,
	)

	return created, nil
}
