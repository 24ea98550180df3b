// websocket/activity.go
package websocket

import (
	"time"

	"github.com/go-co-op/gocron"
)

// startActivitySweep запускает периодическую проверку неактивных клиентов
func (manager *Manager) startActivitySweep() (func(), error) {
	scheduler := gocron.NewScheduler(time.UTC)

	_, err := scheduler.Every(manager.config.SweepInterval).Do(func() {
		manager.Sweep(time.Now())
	})
	if err != nil {
		manager.logger.Error("Ошибка при настройке проверки активности: %v", err)
		return nil, err
	}

	manager.logger.Debug("Проверка активности клиентов каждые %v", manager.config.SweepInterval)
	scheduler.StartAsync()
	return scheduler.Stop, nil
}

// Sweep закрывает соединения клиентов, неактивных дольше InactivityTimeout.
// Возвращает количество закрытых соединений.
func (manager *Manager) Sweep(now time.Time) int {
	if manager.config.InactivityTimeout <= 0 {
		return 0
	}

	manager.clientsMu.RLock()
	defer manager.clientsMu.RUnlock()

	closed := 0
	for id, client := range manager.Clients {
		idle := client.idleSince(now)
		if idle > manager.config.InactivityTimeout {
			// readPump получит ошибку чтения и снимет клиента с регистрации
			client.Socket.Close()
			closed++
			manager.logger.Info("⚠️ Клиент %s неактивен %v, соединение закрыто", id, idle)
		}
	}
	return closed
}
