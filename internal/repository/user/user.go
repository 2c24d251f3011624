package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/user"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "name", "lastname", "email", "phone", "type", "created_at"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (name, lastname, email, phone, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Name,
		userModifyModel.Lastname,
		userModifyModel.Email,
		userModifyModel.Phone,
		userModifyModel.Type,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, user.ErrConflict
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT ` + strings.Join(userColumns, ", ") + `
		FROM users
		WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&userModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	builder := qb.
		Select(userColumns...).
		From("users").
		OrderBy("id")

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"type": filter.Type.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(scanTargets(&userModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func scanTargets(u *UserDB) []any {
	return []any{
		&u.ID,
		&u.Name,
		&u.Lastname,
		&u.Email,
		&u.Phone,
		&u.Type,
		&u.CreatedAt,
	}
}
