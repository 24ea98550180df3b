// routes/page_handlers.go
package routes

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// indexPage - данные для шаблона страницы
type indexPage struct {
	Title string
}

// GetIndexHandler отдает страницу дашборда; дерево компонентов
// страница запрашивает сама через /api/layout
func GetIndexHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, indexPage{Title: deps.UI.Title}); err != nil {
			deps.Logger.Error("❌ Ошибка при отрисовке страницы: %v", err)
		}
	}
}
