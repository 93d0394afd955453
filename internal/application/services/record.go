package services

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"record-manager-api/internal/application/ports"
	domain "record-manager-api/internal/domain/record"
	"record-manager-api/internal/infrastructure/mq"
	"record-manager-api/internal/interface/api/rest/dto/record"
)

// RecordService is the single authority for the national-id uniqueness
// invariant. The existence checks here give the client a friendly error;
// the UNIQUE constraint on the cpf column is what actually holds the
// invariant when two writers race past the check.
type RecordService struct {
	recordRepository domain.Repository
	mq               ports.RabbitMQ
	mCounter         *prometheus.CounterVec
}

func NewRecordService(
	recordRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.RecordService {
	return &RecordService{
		recordRepository: recordRepository,
		mq:               mq,
		mCounter:         mCounter,
	}
}

func (rs *RecordService) FindRecordByID(ctx context.Context, id domain.ID) (*domain.Record, error) {
	r, err := rs.recordRepository.FetchRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (rs *RecordService) FindRecords(ctx context.Context) (domain.Records, error) {
	records, err := rs.recordRepository.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (rs *RecordService) CreateRecord(ctx context.Context, r domain.Record) (*domain.Record, error) {
	exists, err := rs.recordRepository.ExistsByNationalID(ctx, r.NationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrNationalIDExists
	}

	rRet, err := rs.recordRepository.CreateRecord(ctx, r)
	if err != nil {
		return nil, err
	}

	if rRet != nil {
		rs.mq.GetInputChan() <- mq.Event{
			Id:       uuid.New(),
			TS:       time.Now(),
			Method:   http.MethodPost,
			RecordID: strconv.FormatInt(int64(rRet.ID), 10),
			Payload:  record.ToResponseRecord(*rRet),
		}
	}

	rs.mCounter.WithLabelValues("record_created_total").Inc()

	return rRet, nil
}

func (rs *RecordService) UpdateRecord(ctx context.Context, id domain.ID, r domain.Record) (*domain.Record, error) {
	cur, err := rs.recordRepository.FetchRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, domain.ErrRecordNotFound
	}

	exists, err := rs.recordRepository.ExistsByNationalIDExcludingID(ctx, r.NationalID, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrNationalIDExists
	}

	r.ID = id
	rRet, err := rs.recordRepository.UpdateRecord(ctx, r)
	if err != nil {
		return nil, err
	}
	if rRet == nil {
		// deleted between the fetch above and the update
		return nil, domain.ErrRecordNotFound
	}

	rs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   http.MethodPut,
		RecordID: strconv.FormatInt(int64(rRet.ID), 10),
		Payload:  record.ToResponseRecord(*rRet),
	}

	rs.mCounter.WithLabelValues("record_updated_total").Inc()

	return rRet, nil
}

func (rs *RecordService) DeleteRecord(ctx context.Context, id domain.ID) error {
	r, err := rs.recordRepository.DeleteRecord(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrRecordNotFound
	}

	rs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Method:   http.MethodDelete,
		RecordID: strconv.FormatInt(int64(r.ID), 10),
		Payload:  record.ToResponseRecord(*r),
	}

	rs.mCounter.WithLabelValues("record_deleted_total").Inc()

	return nil
}
