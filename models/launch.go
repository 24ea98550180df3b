package models

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Названия столбцов исходной таблицы
const (
	ColumnFlightNumber   = "Flight Number"
	ColumnLaunchSite     = "Launch Site"
	ColumnPayloadMass    = "Payload Mass (kg)"
	ColumnClass          = "class"
	ColumnBoosterVersion = "Booster Version"
)

// Значения столбца class
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord представляет одну строку таблицы запусков
type LaunchRecord struct {
	FlightNumber   int     `json:"flightNumber,omitempty"`
	LaunchSite     string  `json:"launchSite"`
	BoosterVersion string  `json:"boosterVersion"`
	PayloadMassKg  float64 `json:"payloadMassKg"`
	Class          int     `json:"class"`
}

// BoosterVersionToken возвращает второй токен версии ускорителя
// ("F9 v1.0  B0003" -> "v1.0"). Пустая строка, если токена нет.
func (r LaunchRecord) BoosterVersionToken() string {
	fields := strings.Fields(r.BoosterVersion)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// LaunchTable - неизменяемая таблица запусков, загружаемая один раз при старте
type LaunchTable struct {
	records []LaunchRecord
}

// NewLaunchTable создает таблицу из копии переданных записей
func NewLaunchTable(records []LaunchRecord) *LaunchTable {
	copied := make([]LaunchRecord, len(records))
	copy(copied, records)
	return &LaunchTable{records: copied}
}

// Len возвращает количество записей
func (t *LaunchTable) Len() int {
	return len(t.records)
}

// Records возвращает копию записей
func (t *LaunchTable) Records() []LaunchRecord {
	copied := make([]LaunchRecord, len(t.records))
	copy(copied, t.records)
	return copied
}

// Each вызывает fn для каждой записи по порядку
func (t *LaunchTable) Each(fn func(LaunchRecord)) {
	for _, r := range t.records {
		fn(r)
	}
}

// SitesInOrder возвращает площадки в порядке первого появления в таблице
func (t *LaunchTable) SitesInOrder() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, r := range t.records {
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			sites = append(sites, r.LaunchSite)
		}
	}
	return sites
}

// Sites возвращает отсортированный список различных площадок
func (t *LaunchTable) Sites() []string {
	sites := t.SitesInOrder()
	sort.Strings(sites)
	return sites
}

// PayloadBounds возвращает минимальную и максимальную массу полезной нагрузки.
// Для пустой таблицы ok == false.
func (t *LaunchTable) PayloadBounds() (min, max float64, ok bool) {
	if len(t.records) == 0 {
		return 0, 0, false
	}
	min, max = t.records[0].PayloadMassKg, t.records[0].PayloadMassKg
	for _, r := range t.records[1:] {
		if r.PayloadMassKg < min {
			min = r.PayloadMassKg
		}
		if r.PayloadMassKg > max {
			max = r.PayloadMassKg
		}
	}
	return min, max, true
}

// Validate проверяет, что запись пригодна для построения диаграмм
func (r LaunchRecord) Validate() error {
	if strings.TrimSpace(r.LaunchSite) == "" {
		return fmt.Errorf("пустое значение %q", ColumnLaunchSite)
	}
	if r.PayloadMassKg < 0 || math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
		return fmt.Errorf("некорректное значение %q: %v", ColumnPayloadMass, r.PayloadMassKg)
	}
	if r.Class != ClassFailure && r.Class != ClassSuccess {
		return fmt.Errorf("некорректное значение %q: %d", ColumnClass, r.Class)
	}
	if r.BoosterVersionToken() == "" {
		return fmt.Errorf("значение %q не содержит версии: %q", ColumnBoosterVersion, r.BoosterVersion)
	}
	return nil
}
