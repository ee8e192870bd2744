package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=../mock/bring_session_mock.go -package=mock

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// BringSession is an authenticated connection to the Bring API
type BringSession interface {
	Login(ctx context.Context) error
	LoadLists(ctx context.Context) ([]BringList, error)
	BatchUpdateList(ctx context.Context, list ListHandle, changes []ItemChange, op ItemOperation) error
	Notify(ctx context.Context, list ListHandle, notification NotificationType) error

	// RefreshCatalog reloads the product catalog once its cached copy expired
	RefreshCatalog(ctx context.Context) error

	// TranslationCatalog returns the product names of the last refresh.
	// It may be nil when the catalog could not be loaded.
	TranslationCatalog() ProductCatalog
}
