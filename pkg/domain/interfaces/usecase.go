package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . GraphResolver

import "context"

// GraphResolver resolves a human-readable problem name to a rendered
// graph image. User-initiated and synchronous; callers block for the
// duration of the chain.
type GraphResolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
}
