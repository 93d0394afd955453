package record

import (
	"context"
)

type Repository interface {
	FetchRecordByID(ctx context.Context, id ID) (*Record, error)
	FetchRecords(ctx context.Context) (Records, error)
	CreateRecord(ctx context.Context, req Record) (*Record, error)
	UpdateRecord(ctx context.Context, req Record) (*Record, error)
	DeleteRecord(ctx context.Context, id ID) (*Record, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	ExistsByNationalIDExcludingID(ctx context.Context, nationalID string, id ID) (bool, error)
}
