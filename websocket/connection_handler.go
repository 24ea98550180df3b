// websocket/connection_handler.go
package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/LilVoxy/launch_dashboard/reactive"
)

// HandleConnections обрабатывает WebSocket-соединения.
// Параметр compress=snappy включает бинарные кадры, сжатые snappy.
// Параметр inputs ({"id.property": value}) задает текущие значения входов
// страницы, чтобы после переподключения первая отрисовка совпала с ними.
func (manager *Manager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	// Устанавливаем WebSocket-соединение
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		manager.logger.Error("Ошибка при установке WebSocket-соединения: %v", err)
		return
	}

	state := manager.initial.Clone()
	if raw := r.URL.Query().Get("inputs"); raw != "" {
		if err := manager.seedState(state, raw); err != nil {
			manager.logger.Error("⚠️ Значения входов из запроса отклонены, используются значения по умолчанию: %v", err)
			state = manager.initial.Clone()
		}
	}

	// Создаем нового клиента со своей копией значений входов
	client := &Client{
		ID:         uuid.NewString(),
		Socket:     conn,
		Send:       make(chan []byte, sendBufferSize),
		manager:    manager,
		state:      state,
		writerDone: make(chan struct{}),
		compress:   r.URL.Query().Get("compress") == "snappy",
	}
	client.touch(time.Now())

	// Регистрируем клиента в менеджере
	select {
	case manager.Register <- client:
	case <-manager.done:
		conn.Close()
		return
	}

	manager.logger.Debug("Соединение %s установлено с адреса %s", client.ID, r.RemoteAddr)

	// Запускаем горутины для чтения и отправки сообщений
	go client.writePump()
	go client.readPump()
}

// touch запоминает время последней активности клиента
func (c *Client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

// idleSince возвращает время без активности на момент now
func (c *Client) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, c.lastSeen.Load()))
}

// seedState переносит в state значения известных входов из JSON-объекта
func (manager *Manager) seedState(state reactive.State, raw string) error {
	var values map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return fmt.Errorf("некорректный параметр inputs: %w", err)
	}
	for key, value := range values {
		dep, err := reactive.ParseDependency(key)
		if err != nil {
			return err
		}
		if !manager.controller.IsInput(dep) {
			continue
		}
		if len(value) == 0 {
			value = json.RawMessage("null")
		}
		state[dep] = value
	}
	return nil
}
