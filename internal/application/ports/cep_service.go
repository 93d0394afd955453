package ports

import "context"

type CepService interface {
	Lookup(ctx context.Context, cep string) (map[string]any, error)
}
