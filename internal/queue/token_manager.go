// Package queue caps how many generation requests may hold an upstream
// call slot at once. Tokens live in Redis so the cap holds across
// replicas.
package queue

import (
	"context"
	"errors"
)

type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no generation token available")
