// websocket/read_pump.go
package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/launch_dashboard/reactive"
)

// readPump обрабатывает сообщения клиента по одному.
// Это единственный отправитель в c.Send, поэтому канал закрывается здесь.
func (c *Client) readPump() {
	manager := c.manager
	defer func() {
		close(c.Send)
		c.Socket.Close()

		select {
		case manager.Unregister <- c:
		case <-manager.done:
		}
	}()

	// Устанавливаем параметры подключения
	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.touch(time.Now())
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Первая отрисовка: все выходы по значениям по умолчанию
	updates, err := manager.controller.Initial(c.state)
	if err != nil {
		manager.logger.Error("Ошибка первой отрисовки для клиента %s: %v", c.ID, err)
	}
	c.sendUpdates(updates)

	for {
		_, data, err := c.Socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				manager.logger.Error("Ошибка чтения клиента %s: %v", c.ID, err)
			}
			return
		}
		c.touch(time.Now())

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			manager.logger.Error("Ошибка декодирования сообщения клиента %s: %v", c.ID, err)
			continue
		}

		switch msg.Type {
		case MessagePing:
			c.sendMessage(Message{Type: MessagePong})

		case MessageInput:
			c.handleInput(msg)

		default:
			manager.logger.Debug("Неизвестный тип сообщения от клиента %s: %q", c.ID, msg.Type)
		}
	}
}

// handleInput сохраняет новое значение входа и пересчитывает зависящие выходы
func (c *Client) handleInput(msg Message) {
	manager := c.manager
	dep := reactive.Dependency{ID: msg.ID, Property: msg.Property}
	if !manager.controller.IsInput(dep) {
		manager.logger.Debug("Клиент %s прислал значение для неизвестного входа %s", c.ID, dep)
		return
	}
	if len(msg.Value) == 0 {
		msg.Value = json.RawMessage("null")
	}

	c.state[dep] = msg.Value
	updates, err := manager.controller.Dispatch(c.state, dep)
	if err != nil {
		// Выход остается прежним, как при отмене обновления
		manager.logger.Error("Ошибка обработки %s для клиента %s: %v", dep, c.ID, err)
	}
	c.sendUpdates(updates)
}

func (c *Client) sendUpdates(updates []reactive.Update) {
	for _, update := range updates {
		value, err := json.Marshal(update.Value)
		if err != nil {
			c.manager.logger.Error("Ошибка кодирования %s: %v", update.Output, err)
			continue
		}
		c.sendMessage(Message{
			Type:     MessageUpdate,
			ID:       update.Output.ID,
			Property: update.Output.Property,
			Value:    value,
		})
	}
}

func (c *Client) sendMessage(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.manager.logger.Error("Ошибка кодирования сообщения: %v", err)
		return
	}
	select {
	case c.Send <- data:
	case <-c.writerDone:
		// Соединение уже закрыто, readPump завершится на следующем чтении
	}
}
