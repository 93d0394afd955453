package ports

import (
	"context"

	"record-manager-api/internal/domain/record"
)

type RecordService interface {
	FindRecordByID(ctx context.Context, id record.ID) (*record.Record, error)
	FindRecords(ctx context.Context) (record.Records, error)
	CreateRecord(ctx context.Context, r record.Record) (*record.Record, error)
	UpdateRecord(ctx context.Context, id record.ID, r record.Record) (*record.Record, error)
	DeleteRecord(ctx context.Context, id record.ID) error
}
