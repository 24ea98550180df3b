package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Источники таблицы запусков
const (
	SourceCSV   = "csv"
	SourceMySQL = "mysql"
)

// DashboardConfig содержит конфигурацию дашборда
type DashboardConfig struct {
	// Параметры HTTP-сервера
	Server ServerConfig `json:"server" yaml:"server"`

	// Источник таблицы запусков
	Data DataConfig `json:"data" yaml:"data"`

	// Параметры элементов страницы
	UI UIConfig `json:"ui" yaml:"ui"`

	// Параметры WebSocket-соединений
	WebSocket WebSocketConfig `json:"websocket" yaml:"websocket"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging" yaml:"enable_detailed_logging"`

	// Файл для дублирования логов (пусто - только stderr)
	LogFile string `json:"log_file" yaml:"log_file"`
}

// ServerConfig содержит настройки HTTP-сервера
type ServerConfig struct {
	Addr         string        `json:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout" yaml:"idle_timeout"`
}

// DataConfig описывает, откуда загружается таблица запусков
type DataConfig struct {
	Source   string         `json:"source" yaml:"source"`
	CSVPath  string         `json:"csv_path" yaml:"csv_path"`
	Database DatabaseConfig `json:"database" yaml:"database"`
}

// UIConfig содержит параметры выпадающего списка и слайдера
type UIConfig struct {
	Title        string     `json:"title" yaml:"title"`
	DefaultSite  string     `json:"default_site" yaml:"default_site"`
	SliderMin    float64    `json:"slider_min" yaml:"slider_min"`
	SliderMax    float64    `json:"slider_max" yaml:"slider_max"`
	SliderStep   float64    `json:"slider_step" yaml:"slider_step"`
	DefaultRange [2]float64 `json:"default_range" yaml:"default_range"`

	// Линия тренда (МНК) поверх точечной диаграммы
	Trendline bool `json:"trendline" yaml:"trendline"`
}

// WebSocketConfig содержит параметры обслуживания соединений
type WebSocketConfig struct {
	// Период проверки неактивных клиентов (0 - проверка отключена)
	SweepInterval time.Duration `json:"sweep_interval" yaml:"sweep_interval"`

	// Время без сообщений, после которого клиент считается отключенным
	InactivityTimeout time.Duration `json:"inactivity_timeout" yaml:"inactivity_timeout"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbname" yaml:"dbname"`
	Table    string `json:"table" yaml:"table"`
}

// Значения конфигурации по умолчанию
var (
	DefaultDatabaseConfig = DatabaseConfig{
		Driver: "mysql",
		Host:   "localhost",
		Port:   3306,
		User:   "root",
		DBName: "spacex",
		Table:  "spacex_launches",
	}

	DefaultDashboardConfig = DashboardConfig{
		Server: ServerConfig{
			Addr:         "127.0.0.1:8050",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Data: DataConfig{
			Source:   SourceCSV,
			CSVPath:  "spacex_launch_dash.csv",
			Database: DefaultDatabaseConfig,
		},
		WebSocket: WebSocketConfig{
			SweepInterval:     30 * time.Second,
			InactivityTimeout: 65 * time.Second,
		},
	}
)

// GetConfig возвращает конфигурацию дашборда по умолчанию
func GetConfig() DashboardConfig {
	config := DefaultDashboardConfig

	// Параметры страницы
	config.UI.Title = "SpaceX Launch Records Dashboard"
	config.UI.DefaultSite = "ALL"
	config.UI.SliderMin = 0
	config.UI.SliderMax = 10000
	config.UI.SliderStep = 1000
	config.UI.DefaultRange = [2]float64{0, 5000}

	return config
}

// LoadConfig читает YAML-файл поверх значений по умолчанию.
// Пустой путь возвращает конфигурацию по умолчанию.
func LoadConfig(path string) (DashboardConfig, error) {
	config := GetConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("ошибка чтения файла конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("ошибка разбора файла конфигурации %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate проверяет согласованность параметров
func (c DashboardConfig) Validate() error {
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.CSVPath == "" {
			return fmt.Errorf("не указан путь к CSV-файлу")
		}
	case SourceMySQL:
		if c.Data.Database.DBName == "" || c.Data.Database.Table == "" {
			return fmt.Errorf("не указаны база данных или таблица запусков")
		}
	default:
		return fmt.Errorf("неизвестный источник данных: %q", c.Data.Source)
	}

	if c.UI.SliderStep <= 0 {
		return fmt.Errorf("шаг слайдера должен быть положительным: %v", c.UI.SliderStep)
	}
	if c.UI.SliderMax <= c.UI.SliderMin {
		return fmt.Errorf("некорректные границы слайдера: [%v, %v]", c.UI.SliderMin, c.UI.SliderMax)
	}
	for _, v := range c.UI.DefaultRange {
		if v < c.UI.SliderMin || v > c.UI.SliderMax {
			return fmt.Errorf("начальный интервал %v выходит за границы слайдера [%v, %v]", c.UI.DefaultRange, c.UI.SliderMin, c.UI.SliderMax)
		}
	}
	return nil
}
