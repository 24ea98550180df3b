package dashboard

import (
	"strconv"
	"strings"
)

// SelectionEcho повторяет выбранный интервал в том виде, в каком его прислал
// слайдер: You have selected "[0, 5000]"
func SelectionEcho(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return `You have selected "[` + strings.Join(parts, ", ") + `]"`
}
