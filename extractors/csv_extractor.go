package extractors

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LilVoxy/launch_dashboard/models"
)

// ErrMissingColumn возвращается, если в заголовке нет обязательного столбца
var ErrMissingColumn = errors.New("отсутствует обязательный столбец")

// requiredColumns - столбцы, без которых диаграммы не строятся
var requiredColumns = []string{
	models.ColumnLaunchSite,
	models.ColumnPayloadMass,
	models.ColumnClass,
	models.ColumnBoosterVersion,
}

// LoadCSV читает таблицу запусков из файла
func LoadCSV(path string) (*models.LaunchTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла %s: %w", path, err)
	}
	defer file.Close()

	table, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}
	return table, nil
}

// ReadCSV читает таблицу запусков из CSV с заголовком.
// Лишние столбцы игнорируются, порядок столбцов не важен.
func ReadCSV(r io.Reader) (*models.LaunchTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("пустой файл: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("ошибка чтения заголовка: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		// Excel иногда оставляет BOM перед первым столбцом
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.TrimSpace(name)] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
		}
	}
	flightIdx, hasFlight := index[models.ColumnFlightNumber]

	var records []models.LaunchRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", line, err)
		}

		record, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("строка %d: %w", line, err)
		}
		if hasFlight {
			if record.FlightNumber, err = strconv.Atoi(strings.TrimSpace(row[flightIdx])); err != nil {
				return nil, fmt.Errorf("строка %d: некорректное значение %q: %w", line, models.ColumnFlightNumber, err)
			}
		}
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("строка %d: %w", line, err)
		}
		records = append(records, record)
	}

	return models.NewLaunchTable(records), nil
}

// parseRow разбирает значения обязательных столбцов
func parseRow(row []string, index map[string]int) (models.LaunchRecord, error) {
	var record models.LaunchRecord

	record.LaunchSite = strings.TrimSpace(row[index[models.ColumnLaunchSite]])
	record.BoosterVersion = row[index[models.ColumnBoosterVersion]]

	payload, err := strconv.ParseFloat(strings.TrimSpace(row[index[models.ColumnPayloadMass]]), 64)
	if err != nil {
		return record, fmt.Errorf("некорректное значение %q: %w", models.ColumnPayloadMass, err)
	}
	record.PayloadMassKg = payload

	class, err := parseClass(row[index[models.ColumnClass]])
	if err != nil {
		return record, err
	}
	record.Class = class

	return record, nil
}

// parseClass принимает как "1", так и "1.0" (pandas сохраняет int как float)
func parseClass(raw string) (int, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("некорректное значение %q: %w", models.ColumnClass, err)
	}
	if value != float64(int(value)) {
		return 0, fmt.Errorf("некорректное значение %q: %v", models.ColumnClass, value)
	}
	return int(value), nil
}
