package ports

import (
	"context"

	"github.com/aalvaropc/setupd/internal/domain"
)

// PageFetcher retrieves a URL and returns a bounded snapshot of the response.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (domain.ResponseSnapshot, error)
}
