package server

import (
	"context"

	"github.com/galacticos-fc/ranking-service/internal/refresher"
)

// Refresher defines the minimal refresh-loop behavior the server drives.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RefreshNow(ctx context.Context) error
	Status() refresher.Status
}
