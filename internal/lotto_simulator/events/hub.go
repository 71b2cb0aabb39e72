package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var errHubClosed = errors.New("WebSocket Hub 已關閉")

// hubMessage 要送給某個會話訂閱者的訊息
type hubMessage struct {
	sessionID string
	payload   []byte
}

// Hub 管理訂閱回合結果的 WebSocket 連接，每個連接只接收所訂閱會話的事件
type Hub struct {
	// 已註冊的客戶端
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan hubMessage
	quit       chan struct{}
	closeOnce  sync.Once

	mutex  sync.RWMutex
	logger *zap.Logger
}

// NewHub 創建 WebSocket Hub，需呼叫 Start 才會開始分發
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan hubMessage, 256),
		quit:       make(chan struct{}),
		logger:     logger.With(zap.String("component", "ws_hub")),
	}
}

// Start 執行分發迴圈，直到 ctx 取消或 Close 被呼叫
func (h *Hub) Start(ctx context.Context) {
	h.logger.Info("WebSocket Hub 已啟動")

	for {
		select {
		case <-ctx.Done():
			h.Close()
			h.closeClients()
			return

		case <-h.quit:
			h.closeClients()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			client.send <- subscribedMessage(client.sessionID)
			h.logger.Debug("客戶端已訂閱", zap.String("session_id", client.sessionID))

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Debug("客戶端已離線", zap.String("session_id", client.sessionID))
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				if client.sessionID != message.sessionID {
					continue
				}
				select {
				case client.send <- message.payload:
				default:
					// 緩衝已滿，視為慢速客戶端斷開
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

func (h *Hub) closeClients() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.logger.Info("WebSocket Hub 已關閉")
}

func subscribedMessage(sessionID string) []byte {
	payload, _ := json.Marshal(map[string]string{
		"type":       "subscribed",
		"session_id": sessionID,
	})
	return payload
}

// ServeWs 升級 HTTP 連接並訂閱指定會話
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request, sessionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("升級 WebSocket 連接失敗: %w", err)
	}

	client := newClient(h, conn, sessionID)
	select {
	case h.register <- client:
	case <-h.quit:
		conn.Close()
		return errHubClosed
	}

	go client.writePump()
	go client.readPump()
	return nil
}

// Publish 實現 Publisher，把事件送給訂閱該會話的客戶端
func (h *Hub) Publish(ctx context.Context, event RoundEvent) error {
	payload, err := event.Marshal()
	if err != nil {
		return fmt.Errorf("編碼回合事件失敗: %w", err)
	}

	select {
	case <-h.quit:
		return errHubClosed
	default:
	}

	select {
	case h.broadcast <- hubMessage{sessionID: event.SessionID, payload: payload}:
		return nil
	case <-h.quit:
		return errHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close 停止分發迴圈並斷開所有客戶端
func (h *Hub) Close() error {
	h.closeOnce.Do(func() {
		close(h.quit)
	})
	return nil
}

// ClientCount 返回訂閱指定會話的連接數，sessionID 為空時返回全部連接數
func (h *Hub) ClientCount(sessionID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if sessionID == "" {
		return len(h.clients)
	}
	count := 0
	for client := range h.clients {
		if client.sessionID == sessionID {
			count++
		}
	}
	return count
}
