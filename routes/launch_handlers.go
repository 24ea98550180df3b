// routes/launch_handlers.go
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/LilVoxy/launch_dashboard/models"
	"github.com/LilVoxy/launch_dashboard/processor"
)

// LaunchesResponse - ответ API для таблицы запусков
type LaunchesResponse struct {
	Launches []models.LaunchRecord `json:"launches"`
}

// HealthResponse - состояние процесса
type HealthResponse struct {
	Status     string  `json:"status"`
	Rows       int     `json:"rows"`
	Sites      int     `json:"sites"`
	PayloadMin float64 `json:"payloadMin"`
	PayloadMax float64 `json:"payloadMax"`
	Clients    int     `json:"clients"`
}

// GetLaunchesHandler отдает таблицу запусков.
// При Accept-Encoding: x-snappy-framed ответ сжимается snappy.
func GetLaunchesHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := LaunchesResponse{Launches: deps.Table.Records()}
		w.Header().Add("Vary", "Accept-Encoding")

		if !processor.AcceptsSnappy(r) {
			writeJSON(w, deps.Logger, http.StatusOK, response)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", processor.SnappyEncoding)

		sw := processor.NewFramedWriter(w)
		if err := json.NewEncoder(sw).Encode(response); err != nil {
			deps.Logger.Error("❌ Ошибка при кодировании JSON: %v", err)
		}
		if err := sw.Close(); err != nil {
			deps.Logger.Error("❌ Ошибка при сжатии ответа: %v", err)
		}
	}
}

// GetHealthHandler отдает размер таблицы и число подключенных клиентов
func GetHealthHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{
			Status: "ok",
			Rows:   deps.Table.Len(),
			Sites:  len(deps.Table.Sites()),
		}
		if min, max, ok := deps.Table.PayloadBounds(); ok {
			response.PayloadMin = min
			response.PayloadMax = max
		}
		if deps.WSManager != nil {
			response.Clients = deps.WSManager.ClientCount()
		}
		writeJSON(w, deps.Logger, http.StatusOK, response)
	}
}
