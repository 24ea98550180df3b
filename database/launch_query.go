// database/launch_query.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/LilVoxy/launch_dashboard/models"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// rowScanner - часть *sql.Rows, нужная для чтения запусков
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// launchesQuery формирует запрос к таблице запусков
func launchesQuery(table string) (string, error) {
	if !tableNamePattern.MatchString(table) {
		return "", fmt.Errorf("недопустимое имя таблицы: %q", table)
	}
	return fmt.Sprintf(`
		SELECT flight_number, launch_site, booster_version, payload_mass_kg, class
		FROM %s
		ORDER BY flight_number ASC`, table), nil
}

// LoadLaunches читает все запуски из таблицы MySQL
func LoadLaunches(ctx context.Context, db *sql.DB, table string) (*models.LaunchTable, error) {
	query, err := launchesQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе запусков: %w", err)
	}
	defer rows.Close()

	records, err := scanLaunches(rows)
	if err != nil {
		return nil, err
	}
	return models.NewLaunchTable(records), nil
}

// scanLaunches читает и проверяет строки результата
func scanLaunches(rows rowScanner) ([]models.LaunchRecord, error) {
	var records []models.LaunchRecord
	for rows.Next() {
		var record models.LaunchRecord
		var flight sql.NullInt64
		if err := rows.Scan(&flight, &record.LaunchSite, &record.BoosterVersion, &record.PayloadMassKg, &record.Class); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании запуска: %w", err)
		}
		record.FlightNumber = int(flight.Int64)

		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("запуск %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по запускам: %w", err)
	}
	return records, nil
}
