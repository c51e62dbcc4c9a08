package handler

import (
	"context"
	"hotel_manager/database"
	"hotel_manager/helper"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

type occupancyConn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
}

// occupancySubscription lo cumple *redis.PubSub
type occupancySubscription interface {
	Receive(ctx context.Context) (interface{}, error)
	Channel(opts ...redis.ChannelOption) <-chan *redis.Message
	Close() error
}

// subscribeOccupancy devuelve nil cuando no hay redis configurado
var subscribeOccupancy = func(ctx context.Context, roomId uint) occupancySubscription {
	feed := helper.OccupancyFeed()
	if feed == nil {
		return nil
	}
	return feed.Subscribe(ctx, roomId)
}

// RoomOccupancyWebsocket envía la ocupación actual y después cada evento de la habitación
func RoomOccupancyWebsocket(c *websocket.Conn) {
	defer c.Close()

	roomId, ok := c.Locals("roomId").(uint)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	streamRoomOccupancy(ctx, cancel, c, roomId)
}

func streamRoomOccupancy(ctx context.Context, cancel context.CancelFunc, c occupancyConn, roomId uint) {
	// suscribirse antes de la foto inicial para no perder eventos intermedios
	pubsub := subscribeOccupancy(ctx, roomId)
	if pubsub != nil {
		defer pubsub.Close()
		if _, err := pubsub.Receive(ctx); err != nil {
			log.Printf("websocket habitación %d: %v", roomId, err)
			return
		}
	}

	occupancy, err := helper.DefaultReservations(database.DB).Availability(ctx, roomId)
	if err != nil {
		c.WriteJSON(map[string]string{"message": err.Error()})
		return
	}
	if err := c.WriteJSON(occupancy); err != nil {
		return
	}
	if pubsub == nil {
		return
	}

	// el cliente no envía nada; leer solo sirve para detectar el cierre
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("websocket habitación %d: %v", roomId, err)
				return
			}
		}
	}
}
