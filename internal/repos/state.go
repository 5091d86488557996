package repos

import (
	"context"
	"errors"
	"time"
)

// ErrScopeNotFound means the scope was never issued, belongs to another page,
// or has expired.
var ErrScopeNotFound = errors.New("page scope not found")

// Page names the demo a scope belongs to.
const (
	PageEcommerce = "ecommerce"
	PageLMS       = "lms"
	PageDashboard = "dashboard"
	PageWeather   = "weather"
	PageTaskAPI   = "task-api"
	PageChat      = "chat-api"
)

// StateStore keeps the page-local state of each page scope. Values are
// stored as JSON and decoded into dst on Load.
type StateStore interface {
	Load(ctx context.Context, scope, page string, dst any) error
	Save(ctx context.Context, scope, page string, v any) error
	// Prune removes scopes not written since before. It returns the number
	// of scopes removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
