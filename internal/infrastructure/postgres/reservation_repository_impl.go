package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const reservationSelect = `
	SELECT r.id, r.client_id, r.provider_id, r.service, r.date, r.status,
	       r.created_at, r.updated_at,
	       c.name, c.phone_number, p.name, p.phone_number
	FROM reservations r
	JOIN clients c ON c.id = r.client_id
	JOIN providers p ON p.id = r.provider_id
`

func scanReservation(row interface{ Scan(dest ...any) error }) (*entity.Reservation, error) {
	res := &entity.Reservation{}
	var date time.Time
	err := row.Scan(
		&res.ID, &res.ClientID, &res.ProviderID, &res.Service, &date, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
		&res.ClientName, &res.ClientPhoneNumber, &res.ProviderName, &res.ProviderPhoneNumber,
	)
	if err != nil {
		return nil, err
	}
	res.Date = entity.NewDate(date)
	return res, nil
}

// scopeClause renders the visibility scope as SQL. Callers must have
// rejected the empty scope already.
func scopeClause(scope policy.Scope) (string, []any) {
	switch {
	case scope.All:
		return "", nil
	case scope.ClientID != 0:
		return "WHERE r.client_id = $1", []any{scope.ClientID}
	default:
		return "WHERE r.provider_id = $1", []any{scope.ProviderID}
	}
}

func (r *ReservationRepository) List(ctx context.Context, scope policy.Scope) ([]entity.Reservation, error) {
	reservations := make([]entity.Reservation, 0)
	if scope.Empty() {
		return reservations, nil
	}

	where, args := scopeClause(scope)
	rows, err := r.pool.Query(ctx, reservationSelect+where+" ORDER BY r.id", args...)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) Get(ctx context.Context, scope policy.Scope, id int64) (*entity.Reservation, error) {
	if scope.Empty() {
		return nil, repository.ErrNotFound
	}

	where, args := scopeClause(scope)
	if where == "" {
		where = "WHERE r.id = $1"
	} else {
		where += " AND r.id = $2"
	}
	args = append(args, id)

	res, err := scanReservation(r.pool.QueryRow(ctx, reservationSelect+where, args...))
	if err != nil {
		return nil, translateErr(err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (client_id, provider_id, service, date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, res.ClientID, res.ProviderID, res.Service, res.Date.Time, res.Status)
	if err := row.Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, scope policy.Scope, res *entity.Reservation) error {
	if scope.Empty() {
		return repository.ErrNotFound
	}

	sql := `
		UPDATE reservations
		SET service = $1, date = $2, status = $3, updated_at = now()
		WHERE id = $4
	`
	args := []any{res.Service, res.Date.Time, res.Status, res.ID}
	if !scope.All {
		if scope.ClientID != 0 {
			sql += " AND client_id = $5"
			args = append(args, scope.ClientID)
		} else {
			sql += " AND provider_id = $5"
			args = append(args, scope.ProviderID)
		}
	}

	out, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return translateErr(err)
	}
	if out.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, scope policy.Scope, id int64) error {
	if scope.Empty() {
		return repository.ErrNotFound
	}

	sql := `DELETE FROM reservations WHERE id = $1`
	args := []any{id}
	if !scope.All {
		if scope.ClientID != 0 {
			sql += " AND client_id = $2"
			args = append(args, scope.ClientID)
		} else {
			sql += " AND provider_id = $2"
			args = append(args, scope.ProviderID)
		}
	}

	out, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return translateErr(err)
	}
	if out.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)
