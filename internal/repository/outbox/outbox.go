package outbox

import (
	"context"
	"fmt"

	"dispatch/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
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

func (r *Repository) Insert(ctx context.Context, message entities.OutboxMessage) error {
	query := `INSERT INTO outbox (id, event_type, aggregate_id, payload)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		message.ID,
		message.EventType.String(),
		message.AggregateID,
		message.Payload,
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}
	return nil
}

// FetchBatchForUpdate блокирует выбранные строки до конца транзакции,
// параллельные релеи пропускают их (SKIP LOCKED).
// Сообщения с меньшим числом неудачных попыток идут первыми, поэтому
// непубликуемые сообщения не занимают весь батч.
func (r *Repository) FetchBatchForUpdate(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `SELECT id, event_type, aggregate_id, payload, attempts, last_error, created_at
		FROM outbox
		ORDER BY attempts, created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}
	defer rows.Close()

	messageModels := make([]OutboxDB, 0, limit)
	for rows.Next() {
		var messageModel OutboxDB
		err := rows.Scan(
			&messageModel.ID,
			&messageModel.EventType,
			&messageModel.AggregateID,
			&messageModel.Payload,
			&messageModel.Attempts,
			&messageModel.LastError,
			&messageModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
		}
		messageModels = append(messageModels, messageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch error: %w", err)
	}

	return ToDomainList(messageModels), nil
}

func (r *Repository) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := qb.
		Delete("outbox").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository delete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository delete error: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE outbox
		SET attempts = attempts + 1, last_error = $2
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, id, reason)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark failed error: %w", err)
	}
	return nil
}
