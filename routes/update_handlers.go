// routes/update_handlers.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LilVoxy/launch_dashboard/reactive"
)

// UpdateRequest - запрос на пересчет выхода
type UpdateRequest struct {
	Output string       `json:"output"`
	Inputs []InputValue `json:"inputs"`
}

// InputValue - значение одного входа
type InputValue struct {
	ID       string          `json:"id"`
	Property string          `json:"property"`
	Value    json.RawMessage `json:"value"`
}

// UpdateResponse - новое значение выхода: {"response": {id: {property: value}}}
type UpdateResponse struct {
	Response map[string]map[string]any `json:"response"`
}

// UpdateComponentHandler пересчитывает один выход.
// Входы, которых нет в запросе, берутся из значений по умолчанию.
func UpdateComponentHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Некорректное тело запроса", http.StatusBadRequest)
			return
		}

		output, err := reactive.ParseDependency(req.Output)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		state := deps.Initial.Clone()
		for _, in := range req.Inputs {
			value := in.Value
			if len(value) == 0 {
				value = json.RawMessage("null")
			}
			state[reactive.Dependency{ID: in.ID, Property: in.Property}] = value
		}

		update, err := deps.Controller.Resolve(output, state)
		if errors.Is(err, reactive.ErrUnknownOutput) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			deps.Logger.Error("Ошибка при пересчете %s: %v", output, err)
			http.Error(w, "Некорректные значения входов", http.StatusBadRequest)
			return
		}

		writeJSON(w, deps.Logger, http.StatusOK, UpdateResponse{
			Response: map[string]map[string]any{
				update.Output.ID: {update.Output.Property: update.Value},
			},
		})
	}
}
