package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dog-sitters/internal/domain/catalog"
	"dog-sitters/internal/domain/sitters"

	"github.com/jmoiron/sqlx"
)

var _ sitters.Repository = (*SittersRepo)(nil)

type SittersRepo struct {
	db *sqlx.DB
}

func NewSittersRepo(db *sqlx.DB) *SittersRepo {
	return &SittersRepo{db: db}
}

type dbSitter struct {
	ID            string                             `db:"id"`
	OwnerUserID   string                             `db:"owner_user_id"`
	Name          string                             `db:"name"`
	Email         string                             `db:"email"`
	Phone         string                             `db:"phone"`
	ProfileImage  string                             `db:"profile_image"`
	Neighborhood  string                             `db:"neighborhood"`
	Description   string                             `db:"description"`
	Experience    string                             `db:"experience"`
	Neighborhoods jsonColumn[[]string]               `db:"neighborhoods"`
	Services      jsonColumn[[]catalog.Service]      `db:"services"`
	Availability  jsonColumn[[]catalog.Availability] `db:"availability"`
	Rating        float64                            `db:"rating"`
	ReviewCount   int                                `db:"review_count"`
	Verified      bool                               `db:"verified"`
	IDDocumentRef string                             `db:"id_document_ref"`
	SelfieRef     string                             `db:"selfie_ref"`
	PayoutAccount string                             `db:"payout_account"`
	PayoutBank    string                             `db:"payout_bank"`
	CreatedAt     time.Time                          `db:"created_at"`
}

const sitterColumns = `id, owner_user_id, name, email, phone, profile_image,
	neighborhood, description, experience, neighborhoods, services, availability,
	rating, review_count, verified, id_document_ref, selfie_ref,
	payout_account, payout_bank, created_at`

func fromDomainSitter(s catalog.Sitter) dbSitter {
	return dbSitter{
		ID:            s.ID,
		OwnerUserID:   s.OwnerUserID,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		ProfileImage:  s.ProfileImage,
		Neighborhood:  s.Neighborhood,
		Description:   s.Description,
		Experience:    s.Experience,
		Neighborhoods: jsonColumn[[]string]{V: nonNil(s.Neighborhoods)},
		Services:      jsonColumn[[]catalog.Service]{V: nonNil(s.Services)},
		Availability:  jsonColumn[[]catalog.Availability]{V: nonNil(s.Availability)},
		Rating:        s.Rating,
		ReviewCount:   s.ReviewCount,
		Verified:      s.Verified,
		IDDocumentRef: s.IDDocumentRef,
		SelfieRef:     s.SelfieRef,
		PayoutAccount: s.PayoutAccount,
		PayoutBank:    s.PayoutBank,
		CreatedAt:     s.CreatedAt,
	}
}

func (d dbSitter) toDomain() catalog.Sitter {
	return catalog.Sitter{
		ID:            d.ID,
		OwnerUserID:   d.OwnerUserID,
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		ProfileImage:  d.ProfileImage,
		Neighborhood:  d.Neighborhood,
		Description:   d.Description,
		Experience:    d.Experience,
		Neighborhoods: nonNil(d.Neighborhoods.V),
		Services:      nonNil(d.Services.V),
		Availability:  nonNil(d.Availability.V),
		Rating:        d.Rating,
		ReviewCount:   d.ReviewCount,
		Verified:      d.Verified,
		IDDocumentRef: d.IDDocumentRef,
		SelfieRef:     d.SelfieRef,
		PayoutAccount: d.PayoutAccount,
		PayoutBank:    d.PayoutBank,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *SittersRepo) Create(ctx context.Context, s catalog.Sitter) error {
	query := `INSERT INTO sitters (` + sitterColumns + `)
		VALUES (:id, :owner_user_id, :name, :email, :phone, :profile_image,
			:neighborhood, :description, :experience, :neighborhoods, :services, :availability,
			:rating, :review_count, :verified, :id_document_ref, :selfie_ref,
			:payout_account, :payout_bank, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromDomainSitter(s)); err != nil {
		return fmt.Errorf("inserting sitter %s: %w", s.ID, err)
	}
	return nil
}

func (r *SittersRepo) GetByID(ctx context.Context, id string) (catalog.Sitter, error) {
	var row dbSitter
	err := r.db.GetContext(ctx, &row, `SELECT `+sitterColumns+` FROM sitters WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Sitter{}, sitters.ErrNotFound
	}
	if err != nil {
		return catalog.Sitter{}, fmt.Errorf("getting sitter %s: %w", id, err)
	}
	return row.toDomain(), nil
}

func (r *SittersRepo) GetByOwner(ctx context.Context, ownerUserID string) (catalog.Sitter, error) {
	var row dbSitter
	err := r.db.GetContext(ctx, &row,
		`SELECT `+sitterColumns+` FROM sitters WHERE owner_user_id = $1 ORDER BY seq LIMIT 1`, ownerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Sitter{}, sitters.ErrNotFound
	}
	if err != nil {
		return catalog.Sitter{}, fmt.Errorf("getting sitter of %s: %w", ownerUserID, err)
	}
	return row.toDomain(), nil
}

func (r *SittersRepo) List(ctx context.Context) ([]catalog.Sitter, error) {
	var rows []dbSitter
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+sitterColumns+` FROM sitters ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("listing sitters: %w", err)
	}
	out := make([]catalog.Sitter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
