//go:build ignore

// Publishes sample identification events and waits until the audit worker
// group has acknowledged them.
//
//	go run scripts/test_publish.go -redis localhost:6379 -n 5
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/building-identifier/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stream := flag.String("stream", domain.StreamBuildingIdentified, "stream name")
	group := flag.String("group", "building-audit-workers", "consumer group to watch")
	count := flag.Int("n", 3, "number of events to publish")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	for i := 0; i < *count; i++ {
		q := domain.IdentifyQuery{
			Position:   domain.Coordinate{Lat: 40.7580, Lon: -73.9855},
			HeadingDeg: float64(i*45) + 10,
			RadiusM:    150,
		}
		event := domain.NewIdentificationEvent(q, domain.BuildingMatch{
			BuildingID: "MOCK_1",
			BearingDeg: q.HeadingDeg + 12,
			Confidence: 0.84,
		}, time.Now().UnixMilli())

		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal event: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: *stream,
			Values: map[string]interface{}{"data": string(data)},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish event: %v", err)
		}

		fmt.Printf("published %s event_id=%s heading=%.0f\n", id, event.EventID, q.HeadingDeg)
	}

	fmt.Printf("waiting for group %q to drain...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			log.Fatal("timeout waiting for the worker")
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, *stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name == *group && g.Pending == 0 && g.Lag == 0 {
					fmt.Println("all events acknowledged")
					return
				}
			}
		}
	}
}
