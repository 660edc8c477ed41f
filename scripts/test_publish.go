// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ReportCreatedEvent struct {
	ReportID  uuid.UUID `json:"report_id"`
	Type      string    `json:"report_type"`
	Severity  string    `json:"severity"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	CreatedAt time.Time `json:"created_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	lat := flag.Float64("lat", 41.38879, "report latitude")
	lon := flag.Float64("lon", 2.15899, "report longitude")
	reportType := flag.String("type", "theft", "report type")
	severity := flag.String("severity", "high", "report severity")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Barcelona, Eixample)
	event := ReportCreatedEvent{
		ReportID:  uuid.New(),
		Type:      *reportType,
		Severity:  *severity,
		Lat:       *lat,
		Lon:       *lon,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:reports:created",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published report event %s (message %s)\n", event.ReportID, id)
	fmt.Println("Watch the worker logs: cached routes near the report should be invalidated")
}
