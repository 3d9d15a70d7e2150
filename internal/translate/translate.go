package translate

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=translate.go -destination=mocks/mock.go

type Client interface {
	// Translate returns one translation per input text, same length and order.
	Translate(ctx context.Context, texts []string, source, target string) ([]string, error)
}
