package ports

import "context"

type CepClient interface {
	Lookup(ctx context.Context, cep string) (map[string]any, error)
}
