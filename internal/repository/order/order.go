package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	orderservice "service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	query := `INSERT INTO orders (id, status, destination_latitude, destination_longitude, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, destination_latitude, destination_longitude, priority, created_at, updated_at`

	id := uuid.NewString()

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		orderModifyModel.Status,
		orderModifyModel.DestinationLatitude,
		orderModifyModel.DestinationLongitude,
		orderModifyModel.Priority,
	).Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.DestinationLatitude,
		&orderModel.DestinationLongitude,
		&orderModel.Priority,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		// Коллизия сгенерированного id крайне маловероятна, но отличима от прочих сбоев.
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("duplicate order id %s: %w", id, err)
		}

		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT id, status, destination_latitude, destination_longitude, priority, created_at, updated_at
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.DestinationLatitude,
			&orderModel.DestinationLongitude,
			&orderModel.Priority,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
	SELECT id, status, destination_latitude, destination_longitude, priority, created_at, updated_at
	FROM orders
	ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.DestinationLatitude,
			&orderModel.DestinationLongitude,
			&orderModel.Priority,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.DestinationLatitude != nil {
		builder = builder.Set("destination_latitude", orderModifyModel.DestinationLatitude)
	}
	if orderModifyModel.DestinationLongitude != nil {
		builder = builder.Set("destination_longitude", orderModifyModel.DestinationLongitude)
	}
	if orderModifyModel.Priority != nil {
		builder = builder.Set("priority", orderModifyModel.Priority)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING id, status, destination_latitude, destination_longitude, priority, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.ID,
			&orderModel.Status,
			&orderModel.DestinationLatitude,
			&orderModel.DestinationLongitude,
			&orderModel.Priority,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// Delete возвращает false если записи не было, ошибки тут нет.
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM orders WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query, args, err := qb.
		Select("status", "COUNT(*)").
		From("orders").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}

	return counts, nil
}
