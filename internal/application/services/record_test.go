package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-manager-api/internal/application/ports"
	domain "record-manager-api/internal/domain/record"
	"record-manager-api/internal/infrastructure/mq"
)

type FakeRepository struct {
	FetchRecordByIDFunc               func(ctx context.Context, id domain.ID) (*domain.Record, error)
	FetchRecordsFunc                  func(ctx context.Context) (domain.Records, error)
	CreateRecordFunc                  func(ctx context.Context, req domain.Record) (*domain.Record, error)
	UpdateRecordFunc                  func(ctx context.Context, req domain.Record) (*domain.Record, error)
	DeleteRecordFunc                  func(ctx context.Context, id domain.ID) (*domain.Record, error)
	ExistsByNationalIDFunc            func(ctx context.Context, nationalID string) (bool, error)
	ExistsByNationalIDExcludingIDFunc func(ctx context.Context, nationalID string, id domain.ID) (bool, error)
}

func (f *FakeRepository) FetchRecordByID(ctx context.Context, id domain.ID) (*domain.Record, error) {
	if f.FetchRecordByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecordByIDFunc(ctx, id)
}
func (f *FakeRepository) FetchRecords(ctx context.Context) (domain.Records, error) {
	if f.FetchRecordsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchRecordsFunc(ctx)
}
func (f *FakeRepository) CreateRecord(ctx context.Context, req domain.Record) (*domain.Record, error) {
	if f.CreateRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateRecordFunc(ctx, req)
}
func (f *FakeRepository) UpdateRecord(ctx context.Context, req domain.Record) (*domain.Record, error) {
	if f.UpdateRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateRecordFunc(ctx, req)
}
func (f *FakeRepository) DeleteRecord(ctx context.Context, id domain.ID) (*domain.Record, error) {
	if f.DeleteRecordFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteRecordFunc(ctx, id)
}
func (f *FakeRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	if f.ExistsByNationalIDFunc == nil {
		return false, errors.New("not used")
	}
	return f.ExistsByNationalIDFunc(ctx, nationalID)
}
func (f *FakeRepository) ExistsByNationalIDExcludingID(ctx context.Context, nationalID string, id domain.ID) (bool, error) {
	if f.ExistsByNationalIDExcludingIDFunc == nil {
		return false, errors.New("not used")
	}
	return f.ExistsByNationalIDExcludingIDFunc(ctx, nationalID, id)
}

type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ {
	return &FakeMQ{in: make(chan mq.Event, 8)}
}

func (f *FakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeMQ) Init() error                                   { return nil }
func (f *FakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection                  { return nil }

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "recordmanager", Name: "general_counters"},
		[]string{"result"},
	)
}

func newRecordService(repo domain.Repository, fmq *FakeMQ) ports.RecordService {
	return NewRecordService(repo, fmq, newCounter())
}

func someRecord() domain.Record {
	return domain.Record{
		FullName:     "Maria Silva",
		NationalID:   "123.456.789-09",
		PostalCode:   "01001-000",
		Street:       "Praça da Sé",
		Neighborhood: "Sé",
		City:         "São Paulo",
		State:        "SP",
	}
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Run("advisory check refuses a used national id before touching the store", func(t *testing.T) {
		inserted := false
		repo := &FakeRepository{
			ExistsByNationalIDFunc: func(ctx context.Context, nationalID string) (bool, error) {
				return true, nil
			},
			CreateRecordFunc: func(ctx context.Context, req domain.Record) (*domain.Record, error) {
				inserted = true
				return nil, errors.New("must not be called")
			},
		}
		fmq := NewFakeMQ()

		got, err := newRecordService(repo, fmq).CreateRecord(context.Background(), someRecord())
		require.ErrorIs(t, err, domain.ErrNationalIDExists)
		assert.Nil(t, got)
		assert.False(t, inserted)
		assert.Len(t, fmq.in, 0)
	})

	t.Run("persist-time duplicate from the constraint surfaces identically", func(t *testing.T) {
		repo := &FakeRepository{
			ExistsByNationalIDFunc: func(ctx context.Context, nationalID string) (bool, error) {
				return false, nil
			},
			CreateRecordFunc: func(ctx context.Context, req domain.Record) (*domain.Record, error) {
				// the race lost at the UNIQUE constraint
				return nil, domain.ErrNationalIDExists
			},
		}

		_, err := newRecordService(repo, NewFakeMQ()).CreateRecord(context.Background(), someRecord())
		require.ErrorIs(t, err, domain.ErrNationalIDExists)
	})

	t.Run("success emits a POST event", func(t *testing.T) {
		stored := someRecord()
		stored.ID = 7
		repo := &FakeRepository{
			ExistsByNationalIDFunc: func(ctx context.Context, nationalID string) (bool, error) {
				require.Equal(t, "123.456.789-09", nationalID)
				return false, nil
			},
			CreateRecordFunc: func(ctx context.Context, req domain.Record) (*domain.Record, error) {
				return &stored, nil
			},
		}
		fmq := NewFakeMQ()

		got, err := newRecordService(repo, fmq).CreateRecord(context.Background(), someRecord())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.ID(7), got.ID)

		require.Len(t, fmq.in, 1)
		e := <-fmq.in
		assert.Equal(t, http.MethodPost, e.Method)
		assert.Equal(t, "7", e.RecordID)
		assert.Equal(t, int64(7), e.Payload.ID)
	})
}

func TestRecordService_UpdateRecord(t *testing.T) {
	existing := someRecord()
	existing.ID = 7

	t.Run("unknown id fails with not found", func(t *testing.T) {
		repo := &FakeRepository{
			FetchRecordByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				return nil, nil
			},
		}

		_, err := newRecordService(repo, NewFakeMQ()).UpdateRecord(context.Background(), 7, someRecord())
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("national id held by another record is refused", func(t *testing.T) {
		repo := &FakeRepository{
			FetchRecordByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				return &existing, nil
			},
			ExistsByNationalIDExcludingIDFunc: func(ctx context.Context, nationalID string, id domain.ID) (bool, error) {
				require.Equal(t, domain.ID(7), id)
				return true, nil
			},
		}

		_, err := newRecordService(repo, NewFakeMQ()).UpdateRecord(context.Background(), 7, someRecord())
		require.ErrorIs(t, err, domain.ErrNationalIDExists)
	})

	t.Run("keeping its own national id succeeds and emits a PUT event", func(t *testing.T) {
		updated := existing
		repo := &FakeRepository{
			FetchRecordByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				return &existing, nil
			},
			ExistsByNationalIDExcludingIDFunc: func(ctx context.Context, nationalID string, id domain.ID) (bool, error) {
				return false, nil
			},
			UpdateRecordFunc: func(ctx context.Context, req domain.Record) (*domain.Record, error) {
				require.Equal(t, domain.ID(7), req.ID)
				return &updated, nil
			},
		}
		fmq := NewFakeMQ()

		got, err := newRecordService(repo, fmq).UpdateRecord(context.Background(), 7, someRecord())
		require.NoError(t, err)
		require.NotNil(t, got)

		require.Len(t, fmq.in, 1)
		e := <-fmq.in
		assert.Equal(t, http.MethodPut, e.Method)
	})

	t.Run("record deleted mid-flight maps to not found", func(t *testing.T) {
		repo := &FakeRepository{
			FetchRecordByIDFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				return &existing, nil
			},
			ExistsByNationalIDExcludingIDFunc: func(ctx context.Context, nationalID string, id domain.ID) (bool, error) {
				return false, nil
			},
			UpdateRecordFunc: func(ctx context.Context, req domain.Record) (*domain.Record, error) {
				return nil, nil
			},
		}

		_, err := newRecordService(repo, NewFakeMQ()).UpdateRecord(context.Background(), 7, someRecord())
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Run("unknown id fails with not found", func(t *testing.T) {
		repo := &FakeRepository{
			DeleteRecordFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				return nil, nil
			},
		}

		err := newRecordService(repo, NewFakeMQ()).DeleteRecord(context.Background(), 7)
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("success emits a DELETE event", func(t *testing.T) {
		removed := someRecord()
		removed.ID = 7
		repo := &FakeRepository{
			DeleteRecordFunc: func(ctx context.Context, id domain.ID) (*domain.Record, error) {
				require.Equal(t, domain.ID(7), id)
				return &removed, nil
			},
		}
		fmq := NewFakeMQ()

		err := newRecordService(repo, fmq).DeleteRecord(context.Background(), 7)
		require.NoError(t, err)

		require.Len(t, fmq.in, 1)
		e := <-fmq.in
		assert.Equal(t, http.MethodDelete, e.Method)
		assert.Equal(t, "7", e.RecordID)
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	repo := &FakeRepository{
		FetchRecordsFunc: func(ctx context.Context) (domain.Records, error) {
			return domain.Records{{ID: 3}, {ID: 2}, {ID: 1}}, nil
		},
	}

	got, err := newRecordService(repo, NewFakeMQ()).FindRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.ID(3), got[0].ID)
}
