// routes/layout_handlers.go
package routes

import (
	"net/http"
)

// GetLayoutHandler отдает дерево страницы
func GetLayoutHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Logger, http.StatusOK, deps.Layout)
	}
}

// GetDependenciesHandler отдает связи выходов с входами
func GetDependenciesHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Logger, http.StatusOK, deps.Controller.Describe())
	}
}
