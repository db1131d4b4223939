package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"crewbase.app/org-server/common"
	"crewbase.app/org-server/common/id"
	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/store"
)

type OrganizationService interface {
	Create(ctx context.Context, caller Identity, name, slug string) (*model.Organization, error)
	Get(ctx context.Context, caller Identity, orgID int64) (*model.Organization, error)
}

type organizationService struct {
	stores store.StoreProvider
	tx     store.TxRunner
}

func NewOrganizationService(stores store.StoreProvider, tx store.TxRunner) OrganizationService {
	return &organizationService{
		stores: stores,
		tx:     tx,
	}
}

// Create registers an organization and its founding owner membership. The
// two writes commit as one transaction: no reader can observe the org
// without its owner membership or vice versa.
func (s *organizationService) Create(ctx context.Context, caller Identity, name, slug string) (*model.Organization, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidArgument)
	}

	var createdOrg *model.Organization

	err := s.tx.WithTx(ctx, func(stores store.StoreProvider) error {
		orgStore := stores.Organizations()
		membershipStore := stores.Memberships()

		finalSlug, err := s.ensureOrgSlug(ctx, orgStore, slug)
		if err != nil {
			return err
		}

		org := &model.Organization{
			ID:          id.New(),
			OwnerUserID: caller.UserID,
			Name:        name,
			Slug:        finalSlug,
			Status:      model.OrgStatusActive,
		}

		if err := orgStore.Create(ctx, org); err != nil {
			if errors.Is(err, store.ErrConflict) {
				// The availability check passed but another transaction
				// claimed the slug first; the unique index broke the tie.
				return fmt.Errorf("%w: slug %q is already in use", ErrConflict, finalSlug)
			}
			return fmt.Errorf("creating organization: %w", err)
		}

		owner := &model.Membership{
			ID:     id.New(),
			OrgID:  org.ID,
			UserID: caller.UserID,
			Email:  caller.Email,
			Role:   model.RoleOwner,
			Status: model.MemberStatusActive,
		}

		if err := membershipStore.Create(ctx, owner); err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		createdOrg = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization created",
		"org_id", createdOrg.ID,
		"slug", createdOrg.Slug,
		"owner_user_id", caller.UserID,
	)

	return createdOrg, nil
}

// Get returns the organization to any of its members.
func (s *organizationService) Get(ctx context.Context, caller Identity, orgID int64) (*model.Organization, error) {
	if _, err := requireRole(ctx, s.stores.Memberships(), orgID, caller.UserID,
		model.RoleOwner, model.RoleAdmin, model.RoleStaff); err != nil {
		return nil, err
	}

	org, err := s.stores.Organizations().GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: organization", ErrNotFound)
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) ensureOrgSlug(ctx context.Context, orgStore store.OrganizationStore, slug string) (string, error) {
	base, err := common.Slugify(slug, "org")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	// Fast path
	if _, err := orgStore.GetBySlug(ctx, base); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return base, nil
		}
		return "", fmt.Errorf("checking slug availability: %w", err)
	}

	// Add numeric suffix until available
	for i := 1; i <= 20; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		_, err := orgStore.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
	}

	return "", fmt.Errorf("%w: unable to find available slug for %q", ErrConflict, base)
}
