package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/model"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type OccupancyPublisher interface {
	PublishOccupancy(ctx context.Context, event model.OccupancyEvent) error
}

// RedisFeed publica los cambios de ocupación en un canal por habitación
type RedisFeed struct {
	client *redis.Client
}

var occupancyFeed *RedisFeed

func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

func OccupancyChannel(roomID uint) string {
	return fmt.Sprintf("%s:%d", constants.OCCUPANCY_CHANNEL_PREFIX, roomID)
}

// ConnectOccupancyFeed conecta con Redis si REDIS_ADDR está definido
func ConnectOccupancyFeed() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR vacío: eventos de ocupación desactivados")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("No se pudo conectar a Redis (%s): %v", addr, err)
		client.Close()
		return
	}
	occupancyFeed = NewRedisFeed(client)
	log.Println("Feed de ocupación conectado a Redis")
}

func OccupancyFeed() *RedisFeed {
	return occupancyFeed
}

func CloseOccupancyFeed() {
	if occupancyFeed != nil {
		occupancyFeed.client.Close()
		occupancyFeed = nil
	}
}

func (f *RedisFeed) PublishOccupancy(ctx context.Context, event model.OccupancyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, OccupancyChannel(event.RoomID), payload).Err()
}

func (f *RedisFeed) Subscribe(ctx context.Context, roomID uint) *redis.PubSub {
	return f.client.Subscribe(ctx, OccupancyChannel(roomID))
}
