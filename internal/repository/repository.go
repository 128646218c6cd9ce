package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open connects to the document store named by rawURL. The scheme picks the
// driver: mongodb / mongodb+srv or postgres / postgresql. Connections are
// established lazily, so an unreachable server is not an error here.
func Open(ctx context.Context, rawURL, name string, timeout time.Duration) (DocumentStore, error) {
	if rawURL == "" || name == "" {
		return nil, ErrNoStore
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		s, err := NewMongoStore(ctx, rawURL, name, timeout)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres", "postgresql":
		pool, err := NewPool(ctx, rawURL, timeout)
		if err != nil {
			return nil, err
		}
		return NewPgStore(pool, name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// NewPool creates a PostgreSQL pool. It does not dial until first use.
func NewPool(ctx context.Context, connString string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	cfg.ConnConfig.ConnectTimeout = connectTimeout
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	return pool, nil
}
