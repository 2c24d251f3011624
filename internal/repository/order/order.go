package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"name",
	"lastname",
	"email",
	"phone",
	"delivery_date",
	"delivery_start_time",
	"delivery_end_time",
	"client_id",
	"address_id",
	"driver_id",
	"status",
	"created_at",
}

var selectColumns = strings.Join(orderColumns, ", ")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)
	query := `INSERT INTO orders (
			name, lastname, email, phone,
			delivery_date, delivery_start_time, delivery_end_time,
			client_id, address_id, driver_id, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.Name,
		orderModel.Lastname,
		orderModel.Email,
		orderModel.Phone,
		orderModel.DeliveryDate,
		orderModel.DeliveryStartTime,
		orderModel.DeliveryEndTime,
		orderModel.ClientID,
		orderModel.AddressID,
		orderModel.DriverID,
		orderModel.Status,
	).Scan(&orderModel.ID, &orderModel.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + selectColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		OrderBy("delivery_date", "delivery_start_time", "id")

	if filter.DeliveryDate != nil {
		builder = builder.Where(sq.Eq{"delivery_date": *filter.DeliveryDate})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": *filter.DriverID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return r.queryOrders(ctx, "getall", query, args...)
}

// GetForDriverOnDate при равном начале окна порядок задает id, чтобы ответ был стабильным.
func (r *Repository) GetForDriverOnDate(ctx context.Context, driverID int64, date time.Time) ([]entities.Order, error) {
	query := `SELECT ` + selectColumns + `
		FROM orders
		WHERE driver_id = $1
			AND delivery_date = $2
			AND status = 'assigned'
		ORDER BY delivery_start_time, id`

	return r.queryOrders(ctx, "get for driver", query, driverID, date)
}

func (r *Repository) GetPendingForUpdate(ctx context.Context, limit int) ([]entities.Order, error) {
	query := `SELECT ` + selectColumns + `
		FROM orders
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	return r.queryOrders(ctx, "get pending", query, limit)
}

func (r *Repository) Assign(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	query := `UPDATE orders
		SET driver_id = $2, status = 'assigned'
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + selectColumns

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID).Scan(scanTargets(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected order repository assign error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) queryOrders(ctx context.Context, op string, query string, args ...any) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(scanTargets(&orderModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository %s error: %w", op, err)
	}

	return ToDomainList(orderModels), nil
}

func scanTargets(o *OrderDB) []any {
	return []any{
		&o.ID,
		&o.Name,
		&o.Lastname,
		&o.Email,
		&o.Phone,
		&o.DeliveryDate,
		&o.DeliveryStartTime,
		&o.DeliveryEndTime,
		&o.ClientID,
		&o.AddressID,
		&o.DriverID,
		&o.Status,
		&o.CreatedAt,
	}
}
