package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"sync"
	"time"

	"daily-dish/internal/domain"
)

// EmptyMenuDishName is served as today's dish while the menu has no entries.
const EmptyMenuDishName = "Dish of the Day TBD"

type SystemClock struct{}

func (SystemClock) Today() string { return time.Now().Format("2006-01-02") }

// DailyService owns the dish-of-the-day selection. The cached pick stays
// valid until the calendar day changes or a skip forces a new one; it is
// never persisted, so a restart simply recomputes it on first read.
type DailyService struct {
	store DishStore
	clock Clock
	stats DishStatsCache

	mu        sync.Mutex
	day       string
	nonce     int
	selection *domain.DishRecord
	empty     bool
}

func NewDailyService(store DishStore, clock Clock, stats DishStatsCache) *DailyService {
	return &DailyService{
		store: store,
		clock: clock,
		stats: stats,
	}
}

// SelectIndex deterministically maps a day and nonce onto a dish index:
// sha256 of the day string concatenated with the decimal nonce, first four
// big-endian uint32 words XOR-folded, modulo the dish count.
func SelectIndex(day string, nonce, dishCount int) int {
	if dishCount <= 0 {
		return 0
	}
	digest := sha256.Sum256([]byte(day + strconv.Itoa(nonce)))
	var folded uint32
	for i := 0; i < 4; i++ {
		folded ^= binary.BigEndian.Uint32(digest[i*4 : i*4+4])
	}
	return int(folded % uint32(dishCount))
}

func (s *DailyService) Today(ctx context.Context, userID string) (domain.DishView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.clock.Today()
	// An empty-menu pick is never treated as fresh, so the first dish added
	// becomes eligible immediately instead of waiting for the next day.
	if s.selection == nil || s.empty || s.day != today {
		if err := s.recomputeLocked(ctx, today); err != nil {
			return domain.DishView{}, err
		}
	}
	return toView(*s.selection, userID), nil
}

// Skip bumps the nonce and recomputes eagerly so the next read already
// reflects the skip. The nonce only ever grows.
func (s *DailyService) Skip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nonce++
	return s.recomputeLocked(ctx, s.clock.Today())
}

func (s *DailyService) Nonce() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nonce
}

func (s *DailyService) recomputeLocked(ctx context.Context, today string) error {
	dishes, err := s.store.ReadCollection()
	if err != nil {
		return fmt.Errorf("failed to read menu: %w", err)
	}

	if len(dishes) == 0 {
		s.selection = &domain.DishRecord{Name: EmptyMenuDishName, Ratings: map[string]float64{}}
		s.empty = true
	} else {
		picked := dishes[SelectIndex(today, s.nonce, len(dishes))]
		s.selection = &picked
		s.empty = false
		if s.stats != nil {
			_ = s.stats.RecordDailyPick(ctx, today, picked.Name)
		}
	}
	s.day = today
	return nil
}
