package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/clients"

	"github.com/jmoiron/sqlx"
)

var _ clients.Repository = (*ClientsRepo)(nil)

type ClientsRepo struct {
	db *sqlx.DB
}

func NewClientsRepo(db *sqlx.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

type dbClient struct {
	ID           string                    `db:"id"`
	OwnerUserID  string                    `db:"owner_user_id"`
	Name         string                    `db:"name"`
	Email        string                    `db:"email"`
	Phone        string                    `db:"phone"`
	ProfileImage string                    `db:"profile_image"`
	Neighborhood string                    `db:"neighborhood"`
	Dogs         jsonColumn[[]catalog.Dog] `db:"dogs"`
	CreatedAt    time.Time                 `db:"created_at"`
}

const clientColumns = `id, owner_user_id, name, email, phone, profile_image, neighborhood, dogs, created_at`

func fromDomainClient(c catalog.Client) dbClient {
	return dbClient{
		ID:           c.ID,
		OwnerUserID:  c.OwnerUserID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		ProfileImage: c.ProfileImage,
		Neighborhood: c.Neighborhood,
		Dogs:         jsonColumn[[]catalog.Dog]{V: nonNil(c.Dogs)},
		CreatedAt:    c.CreatedAt,
	}
}

func (d dbClient) toDomain() catalog.Client {
	return catalog.Client{
		ID:           d.ID,
		OwnerUserID:  d.OwnerUserID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		ProfileImage: d.ProfileImage,
		Neighborhood: d.Neighborhood,
		Dogs:         nonNil(d.Dogs.V),
		CreatedAt:    d.CreatedAt,
	}
}

func (r *ClientsRepo) Create(ctx context.Context, c catalog.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `)
		VALUES (:id, :owner_user_id, :name, :email, :phone, :profile_image, :neighborhood, :dogs, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainClient(c)); err != nil {
		return fmt.Errorf("inserting client %s: %w", c.ID, err)
	}
	return nil
}

func (r *ClientsRepo) Update(ctx context.Context, c catalog.Client) error {
	query := `UPDATE clients SET
			name = :name,
			email = :email,
			phone = :phone,
			profile_image = :profile_image,
			neighborhood = :neighborhood,
			dogs = :dogs
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, fromDomainClient(c))
	if err != nil {
		return fmt.Errorf("updating client %s: %w", c.ID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (catalog.Client, error) {
	var row dbClient
	err := r.db.GetContext(ctx, &row, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Client{}, clients.ErrNotFound
	}
	if err != nil {
		return catalog.Client{}, fmt.Errorf("getting client %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *ClientsRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Client, error) {
	var row dbClient
	err := r.db.GetContext(ctx, &row,
		`SELECT `+clientColumns+` FROM clients WHERE owner_user_id = $1 ORDER BY seq LIMIT 1`, ownerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Client{}, clients.ErrNotFound
	}
	if err != nil {
		return catalog.Client{}, fmt.Errorf("getting client of %s: %w", ownerUserID, err)
	}
	return row.toDomain(), nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]catalog.Client, error) {
	var rows []dbClient
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+clientColumns+` FROM clients ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	out := make([]catalog.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
