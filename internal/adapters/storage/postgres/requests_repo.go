package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/requests"

	"github.com/jmoiron/sqlx"
)

var _ requests.Repository = (*RequestsRepo)(nil)

type RequestsRepo struct {
	db *sqlx.DB
}

func NewRequestsRepo(db *sqlx.DB) *RequestsRepo {
	return &RequestsRepo{db: db}
}

type dbRequest struct {
	ID                  string                  `db:"id"`
	ClientID            string                  `db:"client_id"`
	ClientName          string                  `db:"client_name"`
	ClientNeighborhood  string                  `db:"client_neighborhood"`
	ServiceType         string                  `db:"service_type"`
	Date                time.Time               `db:"date"`
	Time                string                  `db:"time"`
	Dog                 jsonColumn[catalog.Dog] `db:"dog"`
	Neighborhood        string                  `db:"neighborhood"`
	SpecialInstructions string                  `db:"special_instructions"`
	OfferedPrice        float64                 `db:"offered_price"`
	Flexible            bool                    `db:"flexible"`
	Status              string                  `db:"status"`
	SitterID            string                  `db:"sitter_id"`
	CreatedAt           time.Time               `db:"created_at"`
	UpdatedAt           time.Time               `db:"updated_at"`
}

const requestColumns = `id, client_id, client_name, client_neighborhood, service_type,
	date, time, dog, neighborhood, special_instructions, offered_price, flexible,
	status, sitter_id, created_at, updated_at`

func fromDomainRequest(r catalog.Request) dbRequest {
	return dbRequest{
		ID:                  r.ID,
		ClientID:            r.Client.ID,
		ClientName:          r.Client.Name,
		ClientNeighborhood:  r.Client.Neighborhood,
		ServiceType:         string(r.ServiceKind),
		Date:                r.Date,
		Time:                r.Time,
		Dog:                 jsonColumn[catalog.Dog]{V: r.Dog},
		Neighborhood:        r.Neighborhood,
		SpecialInstructions: r.SpecialInstructions,
		OfferedPrice:        r.OfferedPrice,
		Flexible:            r.Flexible,
		Status:              string(r.Status),
		SitterID:            r.SitterID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (d dbRequest) toDomain() catalog.Request {
	return catalog.Request{
		ID: d.ID,
		Client: catalog.ClientRef{
			ID:           d.ClientID,
			Name:         d.ClientName,
			Neighborhood: d.ClientNeighborhood,
		},
		ServiceKind:         catalog.ServiceKind(d.ServiceType),
		Date:                d.Date,
		Time:                d.Time,
		Dog:                 d.Dog.V,
		Neighborhood:        d.Neighborhood,
		SpecialInstructions: d.SpecialInstructions,
		OfferedPrice:        d.OfferedPrice,
		Flexible:            d.Flexible,
		Status:              catalog.RequestStatus(d.Status),
		SitterID:            d.SitterID,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

func (r *RequestsRepo) Create(ctx context.Context, req catalog.Request) error {
	query := `INSERT INTO service_requests (` + requestColumns + `)
		VALUES (:id, :client_id, :client_name, :client_neighborhood, :service_type,
			:date, :time, :dog, :neighborhood, :special_instructions, :offered_price, :flexible,
			:status, :sitter_id, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainRequest(req)); err != nil {
		return fmt.Errorf("inserting request %s: %w", req.ID, err)
	}
	return nil
}

// Update solo toca el estado: el resto de la solicitud es inmutable.
// El WHERE sobre status hace que dos transiciones concurrentes no se pisen.
func (r *RequestsRepo) Update(ctx context.Context, req catalog.Request, from catalog.RequestStatus) error {
	query := `UPDATE service_requests SET
			status = :status,
			sitter_id = :sitter_id,
			updated_at = :updated_at
		WHERE id = :id AND status = :from_status`

	arg := struct {
		dbRequest
		FromStatus string `db:"from_status"`
	}{dbRequest: fromDomainRequest(req), FromStatus: string(from)}

	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return fmt.Errorf("updating request %s: %w", req.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating request %s: %w", req.ID, err)
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM service_requests WHERE id = $1)`, req.ID); err != nil {
		return fmt.Errorf("checking request %s: %w", req.ID, err)
	}
	if !exists {
		return requests.ErrNotFound
	}
	return requests.ErrBadState
}

func (r *RequestsRepo) GetByID(ctx context.Context, id string) (catalog.Request, error) {
	var row dbRequest
	err := r.db.GetContext(ctx, &row, `SELECT `+requestColumns+` FROM service_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Request{}, requests.ErrNotFound
	}
	if err != nil {
		return catalog.Request{}, fmt.Errorf("getting request %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *RequestsRepo) List(ctx context.Context) ([]catalog.Request, error) {
	var rows []dbRequest
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+requestColumns+` FROM service_requests ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	out := make([]catalog.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
