package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"crewbase.app/org-server/internal/model"
)

type membershipStore struct {
	q querier
}

const membershipColumns = `id, org_id, user_id, email, role, status, full_name, phone,
	requires_approval, joined_at, onboarded_at, approved_at, approved_by`

func (s *membershipStore) GetByOrgAndUser(ctx context.Context, orgID, userID int64) (*model.Membership, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM org_members WHERE org_id = $1 AND user_id = $2`,
		orgID, userID)
	return scanMembership(row)
}

func (s *membershipStore) ListByOrg(ctx context.Context, orgID int64) ([]model.Membership, error) {
	rows, err := s.q.Query(ctx,
		`SELECT `+membershipColumns+` FROM org_members WHERE org_id = $1 ORDER BY joined_at`,
		orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (s *membershipStore) Create(ctx context.Context, m *model.Membership) error {
	row := s.q.QueryRow(ctx,
		`INSERT INTO org_members (id, org_id, user_id, email, role, status, requires_approval)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+membershipColumns,
		m.ID, m.OrgID, m.UserID, m.Email, m.Role, m.Status, m.RequiresApproval)
	created, err := scanMembership(row)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	*m = *created
	return nil
}

func (s *membershipStore) UpdateOnboarding(ctx context.Context, orgID, userID int64, fullName, phone string) (*model.Membership, error) {
	// Single conditional UPDATE: never creates a row, and the status
	// transition is decided atomically against requires_approval.
	row := s.q.QueryRow(ctx,
		`UPDATE org_members
		 SET full_name = $3,
		     phone = $4,
		     status = CASE WHEN requires_approval THEN 'pending_approval' ELSE 'active' END,
		     onboarded_at = now()
		 WHERE org_id = $1 AND user_id = $2
		 RETURNING `+membershipColumns,
		orgID, userID, fullName, phone)
	return scanMembership(row)
}

func (s *membershipStore) Approve(ctx context.Context, orgID, userID, approvedBy int64) (*model.Membership, error) {
	row := s.q.QueryRow(ctx,
		`UPDATE org_members
		 SET status = 'active', approved_at = now(), approved_by = $3
		 WHERE org_id = $1 AND user_id = $2
		 RETURNING `+membershipColumns,
		orgID, userID, approvedBy)
	return scanMembership(row)
}

func scanMembership(row pgx.Row) (*model.Membership, error) {
	var m model.Membership
	err := row.Scan(&m.ID, &m.OrgID, &m.UserID, &m.Email, &m.Role, &m.Status,
		&m.FullName, &m.Phone, &m.RequiresApproval, &m.JoinedAt,
		&m.OnboardedAt, &m.ApprovedAt, &m.ApprovedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
