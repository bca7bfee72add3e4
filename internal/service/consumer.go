package service

import (
	"context"
	"encoding/json"
	"log"

	"daily-dish/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds the dish stats cache from rating events. Aggregates are
// always recomputed from the durable store, never from the event payload.
type Consumer struct {
	Reader *kafka.Reader
	Store  DishStore
	Stats  DishStatsCache
}

func NewConsumer(reader *kafka.Reader, store DishStore, stats DishStatsCache) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Stats:  stats,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting dish stats consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.DishEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling event: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.DishEvent) {
	if event.Type != domain.EventDishRated {
		return
	}
	log.Printf("Processing rating: dish=%s user=%s rating=%.1f",
		event.DishName, event.UserID, event.Rating)

	dishes, err := c.Store.ReadCollection()
	if err != nil {
		log.Printf("Error reading menu: %v", err)
		return
	}
	i := indexOf(dishes, event.DishName)
	if i < 0 {
		log.Printf("Skipping rating for unknown dish %q", event.DishName)
		return
	}

	values := ratingValues(dishes[i].Ratings)
	if err := c.Stats.UpdateDishStats(ctx, event.DishName, Average(values), len(values)); err != nil {
		log.Printf("Error updating dish stats: %v", err)
		return
	}

	log.Printf("Successfully updated stats for dish %s", event.DishName)
}
