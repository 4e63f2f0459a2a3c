package port

import "context"

// AssetSource fetches named header/footer art.
type AssetSource interface {
	// Fetch returns the raw bytes of the named asset. A missing asset returns an
	// error wrapping domain.ErrAssetNotFound.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Location describes where the source reads from, for logs.
	Location() string
}
