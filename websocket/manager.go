// websocket/manager.go
package websocket

import (
	"context"

	"github.com/LilVoxy/launch_dashboard/config"
	"github.com/LilVoxy/launch_dashboard/reactive"
	"github.com/LilVoxy/launch_dashboard/utils"
)

// NewManager создает менеджер соединений.
// initial - значения входов по умолчанию, копия выдается каждому клиенту.
func NewManager(controller *reactive.Controller, initial reactive.State, cfg config.WebSocketConfig, logger *utils.DashboardLogger) *Manager {
	return &Manager{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		controller: controller,
		initial:    initial,
		logger:     logger,
		config:     cfg,
		done:       make(chan struct{}),
	}
}

// Run обслуживает регистрацию клиентов до отмены контекста
func (manager *Manager) Run(ctx context.Context) error {
	defer close(manager.done)

	// Запускаем проверку активности клиентов
	if manager.config.SweepInterval > 0 {
		stop, err := manager.startActivitySweep()
		if err != nil {
			return err
		}
		defer stop()
	}

	for {
		select {
		case client := <-manager.Register:
			manager.clientsMu.Lock()
			manager.Clients[client.ID] = client
			count := len(manager.Clients)
			manager.clientsMu.Unlock()
			manager.logger.Info("👤 Клиент %s подключился, всего клиентов: %d", client.ID, count)

		case client := <-manager.Unregister:
			manager.clientsMu.Lock()
			if _, ok := manager.Clients[client.ID]; ok {
				delete(manager.Clients, client.ID)
			}
			count := len(manager.Clients)
			manager.clientsMu.Unlock()
			manager.logger.Info("👤 Клиент %s отключился, всего клиентов: %d", client.ID, count)

		case <-ctx.Done():
			manager.closeAll()
			manager.logger.Info("Менеджер WebSocket остановлен")
			return nil
		}
	}
}

// ClientCount возвращает количество подключенных клиентов
func (manager *Manager) ClientCount() int {
	manager.clientsMu.RLock()
	defer manager.clientsMu.RUnlock()
	return len(manager.Clients)
}

// closeAll закрывает все соединения; readPump каждого клиента завершится сам
func (manager *Manager) closeAll() {
	manager.clientsMu.Lock()
	defer manager.clientsMu.Unlock()

	for id, client := range manager.Clients {
		client.Socket.Close()
		delete(manager.Clients, id)
	}
}
