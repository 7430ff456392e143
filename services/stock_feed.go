package services

import (
	"log"
	"sync"
	"time"

	"oakwoods-backend/utils"

	"github.com/gofiber/websocket/v2"
)

// FeedMessage представляет сообщение WebSocket
type FeedMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// StockUpdate представляет payload события изменения остатка
type StockUpdate struct {
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Stock     int       `json:"stock"`
	OrderType string    `json:"order_type"`
	Quantity  int       `json:"quantity"`
	At        time.Time `json:"at"`
}

// feedClient представляет подключенного клиента
type feedClient struct {
	conn *websocket.Conn
	send chan FeedMessage
}

// StockFeed управляет подписчиками на события склада
type StockFeed struct {
	clients    map[*feedClient]bool
	register   chan *feedClient
	unregister chan *feedClient
	broadcast  chan FeedMessage
	mutex      sync.RWMutex
}

// NewStockFeed создает новый хаб подписчиков
func NewStockFeed() *StockFeed {
	return &StockFeed{
		clients:    make(map[*feedClient]bool),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		broadcast:  make(chan FeedMessage, 16),
	}
}

// Run запускает хаб
func (f *StockFeed) Run() {
	for {
		select {
		case client := <-f.register:
			f.mutex.Lock()
			f.clients[client] = true
			f.mutex.Unlock()
			log.Printf("Stock feed: клиент подключен, всего %d", len(f.clients))

		case client := <-f.unregister:
			f.mutex.Lock()
			if _, ok := f.clients[client]; ok {
				delete(f.clients, client)
				close(client.send)
			}
			f.mutex.Unlock()
			log.Printf("Stock feed: клиент отключен, всего %d", len(f.clients))

		case message := <-f.broadcast:
			f.mutex.RLock()
			for client := range f.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(f.clients, client)
				}
			}
			f.mutex.RUnlock()
		}
	}
}

// Publish рассылает событие изменения остатка всем подписчикам;
// при отсутствии подписчиков событие отбрасывается
func (f *StockFeed) Publish(update StockUpdate) {
	if f == nil {
		return
	}
	message := FeedMessage{Type: "stock.update", Payload: update}
	select {
	case f.broadcast <- message:
	default:
	}
}

// HandleWebSocket обслуживает одно подключение: проверяет токен,
// регистрирует клиента и пишет события до разрыва соединения
func (f *StockFeed) HandleWebSocket(conn *websocket.Conn) {
	token := conn.Query("token")
	if _, err := utils.ValidateJWT(token); err != nil {
		conn.WriteJSON(FeedMessage{Type: "error", Payload: "invalid token"})
		conn.Close()
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan FeedMessage, 16),
	}
	f.register <- client

	// Пишущая горутина: события из канала уходят в соединение
	done := make(chan struct{})
	go func() {
		defer close(done)
		for message := range client.send {
			if err := conn.WriteJSON(message); err != nil {
				return
			}
		}
	}()

	// Читаем до ошибки, чтобы заметить разрыв соединения
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	f.unregister <- client
	<-done
	conn.Close()
}
