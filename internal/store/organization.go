package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"crewbase.app/org-server/internal/model"
)

type organizationStore struct {
	q querier
}

const organizationColumns = `id, owner_user_id, name, slug, status, created_at, updated_at`

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id)
	return scanOrganization(row)
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE slug = $1`, slug)
	return scanOrganization(row)
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row := s.q.QueryRow(ctx,
		`INSERT INTO organizations (id, owner_user_id, name, slug, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+organizationColumns,
		org.ID, org.OwnerUserID, org.Name, org.Slug, org.Status)
	created, err := scanOrganization(row)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	*org = *created
	return nil
}

func scanOrganization(row pgx.Row) (*model.Organization, error) {
	var org model.Organization
	err := row.Scan(&org.ID, &org.OwnerUserID, &org.Name, &org.Slug, &org.Status,
		&org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}
