package encoder

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=mocks/mock.go

type Client interface {
	// Encode joins a numbered still-image sequence (printf pattern, e.g.
	// "image-%03d.jpg") into one fixed-duration clip and returns its path.
	Encode(ctx context.Context, imagePattern string, perImageSeconds, clipSeconds int, outPath string) (string, error)
}
