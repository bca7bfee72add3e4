package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"daily-dish/internal/domain"
)

var (
	ErrValidation = errors.New("invalid dish payload")
	ErrConflict   = errors.New("dish with this name already exists")
	ErrNotFound   = errors.New("dish not found")
)

// MenuService owns the persisted dish collection. Every mutation reads the
// whole collection, modifies it in memory and writes it back; the mutex is
// held across the full cycle so concurrent writers cannot lose updates.
type MenuService struct {
	store     DishStore
	images    ImageStore
	publisher DishPublisher
	stats     DishStatsCache

	mu sync.Mutex
}

func NewMenuService(store DishStore, images ImageStore, publisher DishPublisher, stats DishStatsCache) *MenuService {
	return &MenuService{
		store:     store,
		images:    images,
		publisher: publisher,
		stats:     stats,
	}
}

func (s *MenuService) ListAll(userID string) ([]domain.DishView, error) {
	dishes, err := s.store.ReadCollection()
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}

	views := make([]domain.DishView, 0, len(dishes))
	for _, dish := range dishes {
		views = append(views, toView(dish, userID))
	}
	return views, nil
}

func (s *MenuService) Add(ctx context.Context, input domain.DishInput) (*domain.DishRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.ImageBytes) == 0 {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dishes, err := s.store.ReadCollection()
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	if indexOf(dishes, name) >= 0 {
		return nil, ErrConflict
	}

	// Image first: a failed upload must not leave a record behind.
	imagePath, err := s.images.Store(ctx, input.ImageBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	record := domain.DishRecord{
		Name:        name,
		ImagePath:   imagePath,
		Description: input.Description,
		Ratings:     map[string]float64{},
	}
	if err := s.store.WriteCollection(append(dishes, record)); err != nil {
		_ = s.images.Remove(imagePath)
		return nil, fmt.Errorf("failed to persist menu: %w", err)
	}

	s.publish(ctx, domain.DishEvent{Type: domain.EventDishAdded, DishName: name, Timestamp: time.Now()})
	return &record, nil
}

func (s *MenuService) Edit(ctx context.Context, name string, input domain.DishInput) error {
	newName := strings.TrimSpace(input.Name)
	if newName == "" {
		return ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dishes, err := s.store.ReadCollection()
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}
	i := indexOf(dishes, name)
	if i < 0 {
		return ErrNotFound
	}
	if j := indexOf(dishes, newName); j >= 0 && j != i {
		return ErrConflict
	}

	record := dishes[i]
	var oldImage string
	if len(input.ImageBytes) > 0 {
		imagePath, err := s.images.Store(ctx, input.ImageBytes)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}
		oldImage = record.ImagePath
		record.ImagePath = imagePath
	}
	record.Name = newName
	record.Description = input.Description
	dishes[i] = record

	if err := s.store.WriteCollection(dishes); err != nil {
		if oldImage != "" {
			_ = s.images.Remove(record.ImagePath)
		}
		return fmt.Errorf("failed to persist menu: %w", err)
	}
	if oldImage != "" {
		_ = s.images.Remove(oldImage)
	}

	s.publish(ctx, domain.DishEvent{Type: domain.EventDishUpdated, DishName: newName, Timestamp: time.Now()})
	return nil
}

func (s *MenuService) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes, err := s.store.ReadCollection()
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}
	i := indexOf(dishes, name)
	if i < 0 {
		return ErrNotFound
	}

	if err := s.images.Remove(dishes[i].ImagePath); err != nil {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	if err := s.store.WriteCollection(append(dishes[:i], dishes[i+1:]...)); err != nil {
		return fmt.Errorf("failed to persist menu: %w", err)
	}

	s.publish(ctx, domain.DishEvent{Type: domain.EventDishDeleted, DishName: name, Timestamp: time.Now()})
	return nil
}

func (s *MenuService) Rate(ctx context.Context, name, userID string, rating float64) (float64, error) {
	if userID == "" {
		return 0, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dishes, err := s.store.ReadCollection()
	if err != nil {
		return 0, fmt.Errorf("failed to read menu: %w", err)
	}
	i := indexOf(dishes, name)
	if i < 0 {
		return 0, ErrNotFound
	}

	// One rating per user: a repeat rating overwrites the previous value.
	if dishes[i].Ratings == nil {
		dishes[i].Ratings = map[string]float64{}
	}
	dishes[i].Ratings[userID] = rating

	if err := s.store.WriteCollection(dishes); err != nil {
		return 0, fmt.Errorf("failed to persist menu: %w", err)
	}

	average := Average(ratingValues(dishes[i].Ratings))
	s.publish(ctx, domain.DishEvent{
		Type:      domain.EventDishRated,
		DishName:  name,
		UserID:    userID,
		Rating:    rating,
		Timestamp: time.Now(),
	})
	return average, nil
}

// DishStats serves the cached rating aggregate for a dish, falling back to
// the durable store when the cache is cold.
func (s *MenuService) DishStats(ctx context.Context, name string) (map[string]interface{}, error) {
	if s.stats != nil {
		if cached, err := s.stats.DishStats(ctx, name); err == nil && len(cached) > 0 {
			avg, _ := strconv.ParseFloat(cached["avg_rating"], 64)
			count, _ := strconv.Atoi(cached["rating_count"])
			return map[string]interface{}{
				"name":         name,
				"avg_rating":   avg,
				"rating_count": count,
				"last_updated": cached["last_updated"],
			}, nil
		}
	}

	dishes, err := s.store.ReadCollection()
	if err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}
	i := indexOf(dishes, name)
	if i < 0 {
		return nil, ErrNotFound
	}

	values := ratingValues(dishes[i].Ratings)
	return map[string]interface{}{
		"name":         name,
		"avg_rating":   Average(values),
		"rating_count": len(values),
	}, nil
}

// Events only feed the stats cache; losing one never fails the request.
func (s *MenuService) publish(ctx context.Context, event domain.DishEvent) {
	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, event)
	}
}

func indexOf(dishes []domain.DishRecord, name string) int {
	for i, dish := range dishes {
		if dish.Name == name {
			return i
		}
	}
	return -1
}
