package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"crewbase.app/org-server/internal/model"
)

type inviteStore struct {
	q querier
}

const inviteColumns = `id, org_id, email, role, status, requires_approval, invited_by, created_at`

func (s *inviteStore) GetByID(ctx context.Context, id int64) (*model.Invite, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM org_invites WHERE id = $1`, id)
	return scanInvite(row)
}

func (s *inviteStore) ListByOrg(ctx context.Context, orgID int64) ([]model.Invite, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+inviteColumns+` FROM org_invites WHERE org_id = $1 ORDER BY created_at`,
		orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []model.Invite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, *inv)
	}
	return invites, rows.Err()
}

func (s *inviteStore) Create(ctx context.Context, invite *model.Invite) error {
	row := s.q.QueryRow(ctx,
		`INSERT INTO org_invites (id, org_id, email, role, status, requires_approval, invited_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+inviteColumns,
		invite.ID, invite.OrgID, invite.Email, invite.Role, invite.Status,
		invite.RequiresApproval, invite.InvitedBy)
	created, err := scanInvite(row)
	if err != nil {
		return err
	}
	*invite = *created
	return nil
}

func (s *inviteStore) Consume(ctx context.Context, id int64) (*model.Invite, error) {
	// DELETE ... RETURNING makes the consume a compare-and-delete: under
	// concurrent acceptance exactly one transaction sees the row.
	row := s.q.QueryRow(ctx,
		`DELETE FROM org_invites WHERE id = $1 RETURNING `+inviteColumns, id)
	return scanInvite(row)
}

func scanInvite(row pgx.Row) (*model.Invite, error) {
	var inv model.Invite
	err := row.Scan(&inv.ID, &inv.OrgID, &inv.Email, &inv.Role, &inv.Status,
		&inv.RequiresApproval, &inv.InvitedBy, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}
