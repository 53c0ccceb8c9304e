package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message 是推給房間內連線的通知
// 行程表本身才是持久狀態，這些通知不落資料庫
type Message struct {
	// Type 是 "events_updated" 或 "system"
	Type   string `json:"type"`
	RoomID string `json:"room_id"`
	// Day 在 events_updated 時指出是哪一天的行程變了
	Day     int    `json:"day,omitempty"`
	Content string `json:"content,omitempty"`
}

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn
	RoomID   string
	SendChan chan *Message // 消息發送通道，用於異步傳送消息
}

// WebSocketManager 管理所有的 WebSocket 連接和消息傳遞
// 用來讓同房間的旅伴即時看到行程列表的變更
type WebSocketManager struct {
	clients    map[string]map[*Client]bool // 兩層 map: roomID -> client -> bool
	clientsMux sync.RWMutex                // 用於保護 clients map 的讀寫鎖
}

// NewWebSocketManager 創建並初始化新的 WebSocket 管理器
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients: make(map[string]map[*Client]bool),
	}
}

// HandleConnection 處理新的 WebSocket 連接請求，直到連線關閉才返回
func (s *WebSocketManager) HandleConnection(conn *websocket.Conn, roomID string) {
	client := &Client{
		Conn:     conn,
		RoomID:   roomID,
		SendChan: make(chan *Message, 256),
	}

	s.addClient(client)

	// 確保連接關閉時清理資源
	defer func() {
		s.removeClient(client)
		conn.Close()
		close(client.SendChan)
	}()

	go s.writePump(client)
	s.readPump(client)
}

// readPump 維持讀取循環以處理 pong 和關閉訊號
// 客戶端不需要送任何東西，收到的訊息一律丟棄
func (s *WebSocketManager) readPump(client *Client) {
	client.Conn.SetReadLimit(4096)
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket unexpected close error: %v", err)
			}
			break
		}
	}
}

// writePump 處理向客戶端發送消息的邏輯
func (s *WebSocketManager) writePump(client *Client) {
	// 設置心跳檢查計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			messageBytes, err := json.Marshal(message)
			if err != nil {
				log.Printf("message encoding error: %v", err)
				continue
			}

			if err := client.Conn.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
				return
			}

		case <-ticker.C:
			// 發送心跳包
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastToRoom 向房間內的所有客戶端廣播消息
func (s *WebSocketManager) BroadcastToRoom(roomID string, message *Message) {
	s.clientsMux.RLock()
	clients := s.clients[roomID]
	s.clientsMux.RUnlock()

	for client := range clients {
		select {
		case client.SendChan <- message:
			// 消息成功加入發送隊列
		default:
			// 客戶端消息隊列已滿，關閉連接
			s.removeClient(client)
			client.Conn.Close()
		}
	}
}

// BroadcastEventsUpdated 通知房間內所有連線某一天的行程列表變了
func (s *WebSocketManager) BroadcastEventsUpdated(roomID string, day int) {
	s.BroadcastToRoom(roomID, &Message{
		Type:   "events_updated",
		RoomID: roomID,
		Day:    day,
	})
}

// BroadcastSystemMessage 發送系統消息到指定房間
func (s *WebSocketManager) BroadcastSystemMessage(roomID, content string) {
	s.BroadcastToRoom(roomID, &Message{
		Type:    "system",
		RoomID:  roomID,
		Content: content,
	})
}

// addClient 安全地添加新的客戶端連接
func (s *WebSocketManager) addClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if s.clients[client.RoomID] == nil {
		s.clients[client.RoomID] = make(map[*Client]bool)
	}
	s.clients[client.RoomID][client] = true
}

// removeClient 安全地移除客戶端連接
func (s *WebSocketManager) removeClient(client *Client) {
	s.clientsMux.Lock()
	defer s.clientsMux.Unlock()

	if clients, ok := s.clients[client.RoomID]; ok {
		delete(clients, client)
		// 如果房間空了，刪除房間
		if len(clients) == 0 {
			delete(s.clients, client.RoomID)
		}
	}
}

// RoomClients 獲取指定房間的在線客戶端數量
func (s *WebSocketManager) RoomClients(roomID string) int {
	s.clientsMux.RLock()
	defer s.clientsMux.RUnlock()

	return len(s.clients[roomID])
}
