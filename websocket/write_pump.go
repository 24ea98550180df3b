// websocket/write_pump.go
package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/LilVoxy/launch_dashboard/processor"
)

// writePump отвечает за отправку сообщений клиенту
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Socket.Close()
		close(c.writerDone)
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Канал закрыт
				c.Socket.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// Каждое сообщение отправляется отдельным кадром, чтобы клиент разбирал JSON целиком
			if err := c.write(message); err != nil {
				return
			}

		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(message []byte) error {
	if c.compress {
		return c.Socket.WriteMessage(websocket.BinaryMessage, processor.CompressPayload(message))
	}
	return c.Socket.WriteMessage(websocket.TextMessage, message)
}
