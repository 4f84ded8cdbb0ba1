package ports

import "context"

// FileLocator is the host's files cache. It returns the absolute paths of workspace
// files belonging to a category.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type FileLocator interface {
	// Get returns every known file of the category.
	Get(ctx context.Context, category string) ([]string, error)
}
