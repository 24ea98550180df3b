// routes/response.go
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/LilVoxy/launch_dashboard/utils"
)

// writeJSON кодирует ответ и устанавливает заголовок
func writeJSON(w http.ResponseWriter, logger *utils.DashboardLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("❌ Ошибка при кодировании JSON: %v", err)
	}
}
