package service

import (
	"context"
	"errors"
	"fmt"

	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/store"
)

// requireRole resolves the caller's membership in the org and checks it
// against the allowed roles. Read-only. Returns ErrPermissionDenied when the
// caller has no membership or the wrong role.
func requireRole(ctx context.Context, memberships store.MembershipStore, orgID, userID int64, allowed ...model.Role) (model.Role, error) {
	m, err := memberships.GetByOrgAndUser(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrPermissionDenied
		}
		return "", fmt.Errorf("resolving caller membership: %w", err)
	}
	for _, role := range allowed {
		if m.Role == role {
			return m.Role, nil
		}
	}
	return "", ErrPermissionDenied
}
