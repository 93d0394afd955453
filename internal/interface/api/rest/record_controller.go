package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"record-manager-api/internal/application/ports"
	domain "record-manager-api/internal/domain/record"
	"record-manager-api/internal/interface/api/rest/dto/record"
	"record-manager-api/internal/interface/api/rest/validator"
)

type RecordController struct {
	recordService ports.RecordService
	logger        *zap.Logger
}

func NewRecordController(
	r *gin.Engine,
	recordService ports.RecordService,
	logger *zap.Logger,
) *RecordController {
	rc := &RecordController{
		recordService: recordService,
		logger:        logger,
	}

	r.GET(RouteRecords, rc.GetRecordsHandler)
	r.GET(RouteRecord, rc.GetRecordHandler)
	r.POST(RouteRecords, rc.CreateRecordHandler)
	r.PUT(RouteRecord, rc.UpdateRecordHandler)
	r.DELETE(RouteRecord, rc.DeleteRecordHandler)

	return rc
}

func (rc *RecordController) GetRecordsHandler(c *gin.Context) {
	records, err := rc.recordService.FindRecords(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get records"},
		)
		rc.logger.Error("FindRecords() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecords(records))
}

func (rc *RecordController) GetRecordHandler(c *gin.Context) {
	ok, id := validator.IsRecordID(c.Param("record_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "record_id must be a positive integer"},
		)
		return
	}

	r, err := rc.recordService.FindRecordByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a record"},
		)
		rc.logger.Error("FindRecordByID() error", zap.Error(err))
		return
	}

	if r == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "record not found"},
		)
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecord(*r))
}

func (rc *RecordController) CreateRecordHandler(c *gin.Context) {
	var req record.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRecord(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	r, err := rc.recordService.CreateRecord(c.Request.Context(), record.ToDomainRecord(req))
	if err != nil {
		if errors.Is(err, domain.ErrNationalIDExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a record"},
		)
		rc.logger.Error("CreateRecord() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecord(*r))
}

func (rc *RecordController) UpdateRecordHandler(c *gin.Context) {
	ok, id := validator.IsRecordID(c.Param("record_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "record_id must be a positive integer"},
		)
		return
	}

	var req record.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRecord(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	r, err := rc.recordService.UpdateRecord(c.Request.Context(), id, record.ToDomainRecord(req))
	if err != nil {
		if errors.Is(err, domain.ErrNationalIDExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a record"},
		)
		rc.logger.Error("UpdateRecord() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, record.ToResponseRecord(*r))
}

func (rc *RecordController) DeleteRecordHandler(c *gin.Context) {
	ok, id := validator.IsRecordID(c.Param("record_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "record_id must be a positive integer"},
		)
		return
	}

	err := rc.recordService.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete record"},
		)
		rc.logger.Error("DeleteRecord() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
