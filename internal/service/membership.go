package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/store"
)

type MembershipService interface {
	SubmitOnboarding(ctx context.Context, caller Identity, orgID int64, fullName, phone string) (*model.Membership, error)
	Approve(ctx context.Context, caller Identity, orgID, memberUserID int64) (*model.Membership, error)
	List(ctx context.Context, caller Identity, orgID int64) ([]model.Membership, error)
}

type membershipService struct {
	stores store.StoreProvider
}

func NewMembershipService(stores store.StoreProvider) MembershipService {
	return &membershipService{
		stores: stores,
	}
}

// SubmitOnboarding fills in the caller's profile on their existing
// membership. Members invited with requires_approval land in
// pending_approval instead of active and need an explicit approval.
// Onboarding without a prior membership is impossible.
func (s *membershipService) SubmitOnboarding(ctx context.Context, caller Identity, orgID int64, fullName, phone string) (*model.Membership, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidArgument)
	}

	m, err := s.stores.Memberships().UpdateOnboarding(ctx, orgID, caller.UserID, fullName, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: no membership in this organization", ErrPermissionDenied)
		}
		return nil, fmt.Errorf("updating membership: %w", err)
	}

	slog.InfoContext(ctx, "member onboarded",
		"org_id", orgID,
		"user_id", caller.UserID,
		"status", m.Status,
	)

	return m, nil
}

// List returns the org's members to any of its members.
func (s *membershipService) List(ctx context.Context, caller Identity, orgID int64) ([]model.Membership, error) {
	if _, err := requireRole(ctx, s.stores.Memberships(), orgID, caller.UserID,
		model.RoleOwner, model.RoleAdmin, model.RoleStaff); err != nil {
		return nil, err
	}

	members, err := s.stores.Memberships().ListByOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return members, nil
}

// Approve activates a member's existing membership and records the approver.
// Owners and admins only. Approving an already-active member is an
// idempotent no-op apart from refreshing the approval fields.
func (s *membershipService) Approve(ctx context.Context, caller Identity, orgID, memberUserID int64) (*model.Membership, error) {
	if _, err := requireRole(ctx, s.stores.Memberships(), orgID, caller.UserID,
		model.RoleOwner, model.RoleAdmin); err != nil {
		return nil, err
	}

	m, err := s.stores.Memberships().Approve(ctx, orgID, memberUserID, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: member", ErrNotFound)
		}
		return nil, fmt.Errorf("approving membership: %w", err)
	}

	slog.InfoContext(ctx, "member approved",
		"org_id", orgID,
		"member_user_id", memberUserID,
		"approved_by", caller.UserID,
	)

	return m, nil
}
