package service

import (
	"context"

	"daily-dish/internal/domain"
)

// DishStore is the durable whole-collection menu store. ReadCollection
// returns an empty collection when nothing has been persisted yet.
type DishStore interface {
	ReadCollection() ([]domain.DishRecord, error)
	WriteCollection(dishes []domain.DishRecord) error
}

// ImageStore persists raw image bytes and returns an opaque reference.
// Remove is idempotent: removing an absent image is not an error.
type ImageStore interface {
	Store(ctx context.Context, raw []byte) (string, error)
	Remove(ref string) error
}

// Clock reports the current calendar day as a sortable date string.
type Clock interface {
	Today() string
}

type DishPublisher interface {
	PublishEvent(ctx context.Context, event domain.DishEvent) error
}

type DishStatsCache interface {
	UpdateDishStats(ctx context.Context, name string, avg float64, count int) error
	DishStats(ctx context.Context, name string) (map[string]string, error)
	RecordDailyPick(ctx context.Context, day, name string) error
}

type MenuServiceInterface interface {
	ListAll(userID string) ([]domain.DishView, error)
	Add(ctx context.Context, input domain.DishInput) (*domain.DishRecord, error)
	Edit(ctx context.Context, name string, input domain.DishInput) error
	Delete(ctx context.Context, name string) error
	Rate(ctx context.Context, name, userID string, rating float64) (float64, error)
	DishStats(ctx context.Context, name string) (map[string]interface{}, error)
}

type DailyServiceInterface interface {
	Today(ctx context.Context, userID string) (domain.DishView, error)
	Skip(ctx context.Context) error
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ DailyServiceInterface = (*DailyService)(nil)
