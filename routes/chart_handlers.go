// routes/chart_handlers.go
package routes

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/LilVoxy/launch_dashboard/dashboard"
	"github.com/LilVoxy/launch_dashboard/render"
)

// GetChartPNGHandler рисует круговую или точечную диаграмму в PNG.
// Параметры: site (по умолчанию All Sites), low и high (по умолчанию интервал слайдера).
func GetChartPNGHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		site := query.Get("site")
		if site == "" {
			site = dashboard.AllSites
		}

		size, err := parseSize(query.Get("width"), query.Get("height"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var buf bytes.Buffer
		switch mux.Vars(r)["chart"] {
		case "pie":
			err = render.PiePNG(&buf, dashboard.PieChart(deps.Table, site), size)
		case "scatter":
			low, lowErr := parseFloatOr(query.Get("low"), deps.UI.DefaultRange[0])
			high, highErr := parseFloatOr(query.Get("high"), deps.UI.DefaultRange[1])
			if err := errors.Join(lowErr, highErr); err != nil {
				http.Error(w, "Неверный формат границ интервала", http.StatusBadRequest)
				return
			}
			fig := dashboard.ScatterChart(deps.Table, site, dashboard.NewPayloadRange(low, high), deps.Scatter)
			err = render.ScatterPNG(&buf, fig, size)
		default:
			http.NotFound(w, r)
			return
		}

		if errors.Is(err, render.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			deps.Logger.Error("❌ Ошибка при рисовании диаграммы: %v", err)
			http.Error(w, "Ошибка при рисовании диаграммы", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Write(buf.Bytes())
	}
}

func parseFloatOr(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseSize(rawWidth, rawHeight string) (render.Size, error) {
	size := render.Size{Width: render.DefaultWidth, Height: render.DefaultHeight}
	if rawWidth != "" {
		width, err := strconv.Atoi(rawWidth)
		if err != nil || width < 100 || width > 4000 {
			return size, errors.New("неверная ширина изображения")
		}
		size.Width = width
	}
	if rawHeight != "" {
		height, err := strconv.Atoi(rawHeight)
		if err != nil || height < 100 || height > 4000 {
			return size, errors.New("неверная высота изображения")
		}
		size.Height = height
	}
	return size, nil
}
