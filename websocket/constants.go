// websocket/constants.go
package websocket

import (
	"time"
)

// Константы для WebSocket-соединения
const (
	// Время ожидания записи сообщения клиенту
	writeWait = 10 * time.Second

	// Время ожидания сообщения от клиента
	pongWait = 60 * time.Second

	// Период отправки пинг-сообщений
	pingPeriod = (pongWait * 9) / 10

	// Максимальный размер входящего сообщения
	maxMessageSize = 64 * 1024 // 64KB

	// Размер очереди исходящих сообщений клиента
	sendBufferSize = 64
)

// Типы сообщений
const (
	MessageInput  = "input"
	MessageUpdate = "update"
	MessagePing   = "ping"
	MessagePong   = "pong"
)
