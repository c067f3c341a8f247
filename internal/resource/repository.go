package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, res *Resource) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const resourceColumns = `id, name, description, mode, capacity, working_days,
	day_start, day_end, break_start, break_end,
	slot_duration_minutes, buffer_minutes, active, created_at`

func (r *pgxRepository) Create(ctx context.Context, res *Resource) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.resources").
		Columns("name", "description", "mode", "capacity", "working_days",
			"day_start", "day_end", "break_start", "break_end",
			"slot_duration_minutes", "buffer_minutes", "active").
		Values(res.Name, res.Description, res.Mode, res.Capacity, res.WorkingDays,
			res.DayStart, res.DayEnd, res.BreakStart, res.BreakEnd,
			res.SlotDurationMinutes, res.BufferMinutes, res.Active).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create resource query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(resourceColumns).
		From("public.resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get resource query failed: %w", err)
	}

	res, err := scanResource(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(resourceColumns + ", count(*) OVER() as total_count").
		From("public.resources")

	if filter.Mode != "" {
		query = query.Where(squirrel.Eq{"mode": filter.Mode})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"active": true})
	}

	query = query.OrderBy("created_at DESC")

	// Pagination
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
		return nil, 0, fmt.Errorf("build list resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var resources []*Resource
	var total int

	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Description, &res.Mode, &res.Capacity, &res.WorkingDays,
			&res.DayStart, &res.DayEnd, &res.BreakStart, &res.BreakEnd,
			&res.SlotDurationMinutes, &res.BufferMinutes, &res.Active, &res.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan resource failed: %w", err)
		}
		resources = append(resources, &res)
	}

	return resources, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Resource) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.resources").
		Set("name", res.Name).
		Set("description", res.Description).
		Set("capacity", res.Capacity).
		Set("working_days", res.WorkingDays).
		Set("day_start", res.DayStart).
		Set("day_end", res.DayEnd).
		Set("break_start", res.BreakStart).
		Set("break_end", res.BreakEnd).
		Set("slot_duration_minutes", res.SlotDurationMinutes).
		Set("buffer_minutes", res.BufferMinutes).
		Set("active", res.Active).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update resource query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanResource(row pgx.Row) (*Resource, error) {
	var res Resource
	if err := row.Scan(
		&res.ID, &res.Name, &res.Description, &res.Mode, &res.Capacity, &res.WorkingDays,
		&res.DayStart, &res.DayEnd, &res.BreakStart, &res.BreakEnd,
		&res.SlotDurationMinutes, &res.BufferMinutes, &res.Active, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
