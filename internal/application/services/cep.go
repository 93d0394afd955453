package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"record-manager-api/internal/application/ports"
)

// CepService is a deliberately thin proxy: no caching, no retries and no
// format check on the code, the upstream answer goes back verbatim.
type CepService struct {
	client   ports.CepClient
	mCounter *prometheus.CounterVec
}

func NewCepService(client ports.CepClient, mCounter *prometheus.CounterVec) ports.CepService {
	return &CepService{
		client:   client,
		mCounter: mCounter,
	}
}

func (cs *CepService) Lookup(ctx context.Context, cep string) (map[string]any, error) {
	payload, err := cs.client.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}

	cs.mCounter.WithLabelValues("postal_lookup_total").Inc()

	return payload, nil
}
