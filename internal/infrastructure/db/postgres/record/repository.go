package record

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"record-manager-api/internal/domain/record"
	"record-manager-api/internal/infrastructure/db/postgres"
)

// DB is the subset of pgxpool.Pool the repository depends on,
// also satisfied by pgxmock in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) record.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchRecords(ctx context.Context) (record.Records, error) {
	rows, err := r.db.Query(ctx, SelectRecords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rs := Records{}
	for rows.Next() {
		rec := new(Record)

		if err = rows.Scan(
			&rec.ID,
			&rec.FullName,
			&rec.NationalID,
			&rec.PostalCode,
			&rec.Street,
			&rec.Neighborhood,
			&rec.City,
			&rec.State,

			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}

		rs = append(rs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&rs), nil
}

func (r *Repository) FetchRecordByID(ctx context.Context, id record.ID) (*record.Record, error) {
	rec := new(Record)
	err := r.db.QueryRow(ctx, SelectRecordByID, int64(id)).Scan(
		&rec.ID,
		&rec.FullName,
		&rec.NationalID,
		&rec.PostalCode,
		&rec.Street,
		&rec.Neighborhood,
		&rec.City,
		&rec.State,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) CreateRecord(ctx context.Context, req record.Record) (*record.Record, error) {
	rec := new(Record)

	err := r.db.QueryRow(
		ctx,
		InsertRecord,
		req.FullName, req.NationalID, req.PostalCode, req.Street, req.Neighborhood, req.City, req.State,
	).Scan(
		&rec.ID,
		&rec.FullName,
		&rec.NationalID,
		&rec.PostalCode,
		&rec.Street,
		&rec.Neighborhood,
		&rec.City,
		&rec.State,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, record.ErrNationalIDExists
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) UpdateRecord(ctx context.Context, req record.Record) (*record.Record, error) {
	rec := new(Record)

	err := r.db.QueryRow(ctx, UpdateRecordByID,
		req.FullName, req.NationalID, req.PostalCode, req.Street, req.Neighborhood, req.City, req.State, int64(req.ID),
	).Scan(
		&rec.ID,
		&rec.FullName,
		&rec.NationalID,
		&rec.PostalCode,
		&rec.Street,
		&rec.Neighborhood,
		&rec.City,
		&rec.State,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, record.ErrNationalIDExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) DeleteRecord(ctx context.Context, id record.ID) (*record.Record, error) {
	rec := new(Record)
	err := r.db.QueryRow(ctx, DeleteRecordByID, int64(id)).Scan(
		&rec.ID,
		&rec.FullName,
		&rec.NationalID,
		&rec.PostalCode,
		&rec.Street,
		&rec.Neighborhood,
		&rec.City,
		&rec.State,

		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsByCpf, nationalID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) ExistsByNationalIDExcludingID(ctx context.Context, nationalID string, id record.ID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsByCpfExcludingByID, nationalID, int64(id)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
