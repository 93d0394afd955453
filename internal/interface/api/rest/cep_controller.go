package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"record-manager-api/internal/application/ports"
	"record-manager-api/internal/infrastructure/viacep"
)

type CepController struct {
	cepService ports.CepService
	logger     *zap.Logger
}

func NewCepController(
	r *gin.Engine,
	cepService ports.CepService,
	logger *zap.Logger,
) *CepController {
	cc := &CepController{
		cepService: cepService,
		logger:     logger,
	}

	r.GET(RoutePostal, cc.LookupHandler)

	return cc
}

func (cc *CepController) LookupHandler(c *gin.Context) {
	payload, err := cc.cepService.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		var ue *viacep.UpstreamError
		if errors.As(err, &ue) {
			// pass the upstream answer through as-is
			if len(ue.Body) > 0 {
				c.Data(ue.StatusCode, "application/json", ue.Body)
				return
			}
			c.JSON(ue.StatusCode, gin.H{"error": "postal lookup failed"})
			return
		}
		c.JSON(
			http.StatusBadGateway,
			gin.H{"error": "postal lookup failed"},
		)
		cc.logger.Error("Lookup() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, payload)
}
