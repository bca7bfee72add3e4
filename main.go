package main

import (
	"context"

	"daily-dish/config"
	httpapi "daily-dish/internal/api/http"
	"daily-dish/internal/service"
	"daily-dish/internal/storage"
)

func main() {
	cfg := config.Load()

	store := storage.NewJSONFileStore(cfg.MenuFile)
	images := storage.NewDiskImageStore(cfg.UploadsDir)

	var publisher service.DishPublisher
	var stats service.DishStatsCache

	if cfg.RedisAddr != "" {
		stats = storage.NewRedisStatsCache(config.MustInitRedis(cfg.RedisAddr))
	}

	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.KafkaTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		if stats != nil {
			reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, "daily-dish")
			defer reader.Close()
			go service.NewConsumer(reader, store, stats).Start(context.Background())
		}
	}

	menu := service.NewMenuService(store, images, publisher, stats)
	daily := service.NewDailyService(store, service.SystemClock{}, stats)
	qr := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	handler := httpapi.NewHandler(menu, daily, qr)
	httpapi.StartServer(cfg.ListenAddr, httpapi.NewRouter(handler))
}
