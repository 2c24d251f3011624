package address

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/address"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error) {
	query := `INSERT INTO countries (name, slug)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, countryModify.Name, countryModify.Slug).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, address.ErrConflict
		}
		return 0, fmt.Errorf("unexpected address repository create country error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetCountries(ctx context.Context) ([]entities.Country, error) {
	query := `SELECT id, name, slug
		FROM countries
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get countries error: %w", err)
	}
	defer rows.Close()

	countryModels := make([]CountryDB, 0, 8)
	for rows.Next() {
		var countryModel CountryDB
		err := rows.Scan(&countryModel.ID, &countryModel.Name, &countryModel.Slug)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository get countries error: %w", err)
		}
		countryModels = append(countryModels, countryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get countries error: %w", err)
	}

	return toDomainList(countryModels, CountryToDomain), nil
}

func (r *Repository) CreateCity(ctx context.Context, cityModify entities.CityModify) (int64, error) {
	query := `INSERT INTO cities (name, country_id)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(ctx, query, cityModify.Name, cityModify.CountryID).Scan(&id)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return 0, address.ErrConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return 0, address.ErrCountryNotFound
		}
		return 0, fmt.Errorf("unexpected address repository create city error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetCities(ctx context.Context, filter entities.CityFilter) ([]entities.City, error) {
	builder := qb.
		Select("id", "name", "country_id").
		From("cities").
		OrderBy("id")

	if filter.CountryID != nil {
		builder = builder.Where(sq.Eq{"country_id": *filter.CountryID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get cities error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get cities error: %w", err)
	}
	defer rows.Close()

	cityModels := make([]CityDB, 0, 8)
	for rows.Next() {
		var cityModel CityDB
		err := rows.Scan(&cityModel.ID, &cityModel.Name, &cityModel.CountryID)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository get cities error: %w", err)
		}
		cityModels = append(cityModels, cityModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository get cities error: %w", err)
	}

	return toDomainList(cityModels, CityToDomain), nil
}

func (r *Repository) CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error) {
	query := `INSERT INTO addresses (via, number, door, floor, postal_code, city_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		addressModify.Via,
		addressModify.Number,
		valueOrEmpty(addressModify.Door),
		valueOrEmpty(addressModify.Floor),
		addressModify.PostalCode,
		addressModify.CityID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, address.ErrCityNotFound
		}
		return 0, fmt.Errorf("unexpected address repository create address error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAddressByID(ctx context.Context, id int64) (*entities.Address, error) {
	query := `SELECT id, via, number, door, floor, postal_code, city_id, created_at
		FROM addresses
		WHERE id = $1`

	var addressModel AddressDB
	err := r.querier.QueryRow(ctx, query, id).Scan(addressTargets(&addressModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, address.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository getbyid error: %w", err)
	}

	return AddressToDomain(&addressModel), nil
}

func (r *Repository) GetAddresses(ctx context.Context) ([]entities.Address, error) {
	query := `SELECT id, via, number, door, floor, postal_code, city_id, created_at
		FROM addresses
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository getall error: %w", err)
	}
	defer rows.Close()

	addressModels := make([]AddressDB, 0, 8)
	for rows.Next() {
		var addressModel AddressDB
		err := rows.Scan(addressTargets(&addressModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository getall error: %w", err)
		}
		addressModels = append(addressModels, addressModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository getall error: %w", err)
	}

	return toDomainList(addressModels, AddressToDomain), nil
}

func addressTargets(a *AddressDB) []any {
	return []any{
		&a.ID,
		&a.Via,
		&a.Number,
		&a.Door,
		&a.Floor,
		&a.PostalCode,
		&a.CityID,
		&a.CreatedAt,
	}
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
