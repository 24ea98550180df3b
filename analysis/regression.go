package analysis

import (
	"fmt"
	"math"
)

// DataPoint представляет точку данных для линейной регрессии
type DataPoint struct {
	X float64 // Масса полезной нагрузки, кг
	Y float64 // Исход запуска (0 или 1)
}

// RegressionResult содержит результаты линейной регрессии
type RegressionResult struct {
	A  float64 // Коэффициент наклона
	B  float64 // Сдвиг
	R  float64 // Коэффициент корреляции Пирсона
	R2 float64 // Коэффициент детерминации
	N  int     // Количество точек
}

// LinearRegression выполняет расчет линейной регрессии методом наименьших квадратов
func LinearRegression(points []DataPoint) (*RegressionResult, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("для расчета линейной регрессии требуется минимум 2 точки, получено: %d", len(points))
	}

	// a = (n*sum(x*y) - sum(x)*sum(y)) / (n*sum(x^2) - (sum(x))^2)
	// b = (sum(y) - a*sum(x)) / n
	n := float64(len(points))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0
	sumY2 := 0.0

	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
		sumY2 += p.Y * p.Y
	}

	denominator := n*sumX2 - sumX*sumX
	if math.Abs(denominator) < 1e-10 {
		return nil, fmt.Errorf("все X одинаковы, невозможно вычислить наклон")
	}

	a := (n*sumXY - sumX*sumY) / denominator
	b := (sumY - a*sumX) / n

	// r = (n*sum(x*y) - sum(x)*sum(y)) / sqrt[(n*sum(x^2) - (sum(x))^2) * (n*sum(y^2) - (sum(y))^2)]
	numerator := n*sumXY - sumX*sumY
	denominator = math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))

	var r float64
	if math.Abs(denominator) < 1e-10 {
		r = 0 // все Y одинаковы
	} else {
		r = numerator / denominator
	}

	return &RegressionResult{
		A:  a,
		B:  b,
		R:  r,
		R2: r * r,
		N:  len(points),
	}, nil
}

// Predict прогнозирует значение Y для заданного X
func (r *RegressionResult) Predict(x float64) float64 {
	return r.A*x + r.B
}
