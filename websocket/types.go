// websocket/types.go
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/reactive"
	"github.com/LilVoxy/launch_dashboard/utils"
)

// Message - сообщение для обмена через WebSocket.
// Клиент присылает input (новое значение входа) и ping,
// сервер отвечает update (новое значение выхода) и pong.
type Message struct {
	Type     string          `json:"type"`
	ID       string          `json:"id,omitempty"`
	Property string          `json:"property,omitempty"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// Client - подключенная вкладка браузера
type Client struct {
	ID     string
	Socket *websocket.Conn
	Send   chan []byte

	manager    *Manager
	state      reactive.State
	writerDone chan struct{}
	compress   bool
	lastSeen   atomic.Int64
}

// Manager - менеджер WebSocket-соединений
type Manager struct {
	Clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	clientsMu  sync.RWMutex

	controller *reactive.Controller
	initial    reactive.State
	logger     *utils.DashboardLogger
	config     config.WebSocketConfig
	done       chan struct{}
}

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Страница и API обслуживаются одним процессом
	},
}
