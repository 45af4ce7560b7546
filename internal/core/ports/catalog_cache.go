package ports

import "context"

// CatalogCache stores serialized read results for catalog queries.
// Invalidate drops every entry at once; it is called after any catalog write.
type CatalogCache interface {
	// Get decodes the entry for key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}
