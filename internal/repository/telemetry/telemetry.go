package telemetry

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"service/internal/entities"
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

// Insert - чистый append, без уникального ключа: два сэмпла в одну
// секунду это две строки, порядок между ними не определен.
func (r *Repository) Insert(ctx context.Context, sampleEntity entities.TelemetrySample) error {
	sampleModel := FromDomain(&sampleEntity)
	query := `INSERT INTO telemetry (order_id, ts, current_latitude, current_longitude)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		sampleModel.OrderID,
		sampleModel.Timestamp,
		sampleModel.CurrentLatitude,
		sampleModel.CurrentLongitude,
	)
	if err != nil {
		return fmt.Errorf("unexpected telemetry repository insert error: %w", err)
	}

	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID string) ([]entities.TelemetrySample, error) {
	query, args, err := qb.
		Select("order_id", "ts", "current_latitude", "current_longitude").
		From("telemetry").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("ts").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected telemetry repository listbyorder error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected telemetry repository listbyorder error: %w", err)
	}
	defer rows.Close()

	sampleModels := make([]TelemetrySampleDB, 0, 8)
	for rows.Next() {
		var sampleModel TelemetrySampleDB
		err := rows.Scan(
			&sampleModel.OrderID,
			&sampleModel.Timestamp,
			&sampleModel.CurrentLatitude,
			&sampleModel.CurrentLongitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected telemetry repository listbyorder error: %w", err)
		}
		sampleModels = append(sampleModels, sampleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected telemetry repository listbyorder error: %w", err)
	}

	return ToDomainList(sampleModels), nil
}
