package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tversen/venue-booking-backend/internal/pkg/timex"
)

// Store is the persistence contract the lifecycle component consumes. Every
// call is atomic; Create and UpdateSchedule must enforce the uniqueness
// invariant (no two active bookings for the same resource at the same
// slot/range) and report a violation as ErrTimeConflict.
type Store interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id BookingID) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListActive returns pending/approved bookings for a resource. A non-empty
	// date narrows slot-style bookings to that day; empty returns everything
	// active (used for range conflicts).
	ListActive(ctx context.Context, resourceID, date string) ([]*Booking, error)

	UpdateStatus(ctx context.Context, id BookingID, status Status) (*Booking, error)
	UpdateSchedule(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id BookingID) error
}

type pgxStore struct {
	pool *pgxpool.Pool
}

func NewPgxStore(pool *pgxpool.Pool) Store {
	return &pgxStore{pool: pool}
}

const bookingColumns = `id, resource_id, guest_name, guest_phone, guest_email, party_size,
	booking_date, start_time, duration_minutes, check_in, check_out,
	status, notes, created_at`

func (r *pgxStore) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("resource_id", "guest_name", "guest_phone", "guest_email", "party_size",
			"booking_date", "start_time", "duration_minutes", "check_in", "check_out",
			"status", "notes").
		Values(b.ResourceID, b.GuestName, b.GuestPhone, b.GuestEmail, b.PartySize,
			nullDate(b.Date), nullString(b.StartTime), nullInt(b.DurationMinutes),
			nullDate(b.CheckIn), nullDate(b.CheckOut),
			b.Status, b.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		if isConflictViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxStore) GetByID(ctx context.Context, id BookingID) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxStore) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"resource_id": filter.ResourceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"booking_date": filter.Date})
	}

	query = query.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, n, err := scanBookingWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		total = n
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxStore) ListActive(ctx context.Context, resourceID, date string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"status": []Status{StatusPending, StatusApproved}})

	if date != "" {
		query = query.Where(squirrel.Eq{"booking_date": date})
	}

	sql, args, err := query.OrderBy("created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list active bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxStore) UpdateStatus(ctx context.Context, id BookingID, status Status) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + bookingColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update booking status query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update booking status failed: %w", err)
	}
	return b, nil
}

func (r *pgxStore) UpdateSchedule(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("booking_date", nullDate(b.Date)).
		Set("start_time", nullString(b.StartTime)).
		Set("check_in", nullDate(b.CheckIn)).
		Set("check_out", nullDate(b.CheckOut)).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking schedule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isConflictViolation(err) {
			return ErrTimeConflict
		}
		return fmt.Errorf("update booking schedule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxStore) Delete(ctx context.Context, id BookingID) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// isConflictViolation reports whether err is the storage-level uniqueness
// guard firing: the partial unique index for slot bookings or the gist
// exclusion constraint for range bookings.
func isConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation || pgErr.Code == pgerrcode.ExclusionViolation
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b           Booking
		bookingDate *time.Time
		startTime   *string
		duration    *int
		checkIn     *time.Time
		checkOut    *time.Time
	)
	if err := row.Scan(
		&b.ID, &b.ResourceID, &b.GuestName, &b.GuestPhone, &b.GuestEmail, &b.PartySize,
		&bookingDate, &startTime, &duration, &checkIn, &checkOut,
		&b.Status, &b.Notes, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	fillSchedule(&b, bookingDate, startTime, duration, checkIn, checkOut)
	return &b, nil
}

func scanBookingWithTotal(row pgx.Row) (*Booking, int, error) {
	var (
		b           Booking
		bookingDate *time.Time
		startTime   *string
		duration    *int
		checkIn     *time.Time
		checkOut    *time.Time
		total       int
	)
	if err := row.Scan(
		&b.ID, &b.ResourceID, &b.GuestName, &b.GuestPhone, &b.GuestEmail, &b.PartySize,
		&bookingDate, &startTime, &duration, &checkIn, &checkOut,
		&b.Status, &b.Notes, &b.CreatedAt, &total,
	); err != nil {
		return nil, 0, err
	}
	fillSchedule(&b, bookingDate, startTime, duration, checkIn, checkOut)
	return &b, total, nil
}

// fillSchedule converts nullable storage columns back into the caller-facing
// local date/time strings.
func fillSchedule(b *Booking, bookingDate *time.Time, startTime *string, duration *int, checkIn, checkOut *time.Time) {
	if bookingDate != nil {
		b.Date = bookingDate.Format(timex.DateLayout)
	}
	if startTime != nil {
		b.StartTime = *startTime
	}
	if duration != nil {
		b.DurationMinutes = *duration
	}
	if checkIn != nil {
		b.CheckIn = checkIn.Format(timex.DateLayout)
	}
	if checkOut != nil {
		b.CheckOut = checkOut.Format(timex.DateLayout)
	}
}

func nullDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}
