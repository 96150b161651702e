package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config содержит настройки приложения
type Config struct {
	DBHost     string // Хост базы данных
	DBPort     string // Порт базы данных
	DBUser     string // Пользователь базы данных
	DBPassword string // Пароль базы данных
	DBName     string // Имя базы данных

	HTTPPort string // Порт HTTP сервера

	CacheMaxEntries int           // Ёмкость кэшей карт и совместимости
	CacheTTL        time.Duration // Время жизни записей кэша

	PrecomputeMatrix bool // Жадный расчёт матрицы совместимости 12x12

	DispatchSchedule string // Cron-выражение ежедневной рассылки
	AlmanacURL       string // URL внешнего XML-альманаха (пусто = отключено)

	TelegramToken string // Токен Telegram-бота (пусто = отключено)

	LogLevel string // Уровень логирования
}

// LoadConfig загружает конфигурацию из .env файла
func LoadConfig() (*Config, error) {
	// Загружаем переменные окружения из .env файла
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Файл .env не найден")
	}

	// Парсим время жизни кэша
	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "1h"))
	if err != nil {
		ttl = time.Hour // По умолчанию 1 час
	}

	maxEntries, err := strconv.Atoi(getEnv("CACHE_MAX_ENTRIES", "256"))
	if err != nil || maxEntries <= 0 {
		maxEntries = 256
	}

	config := &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "astrology_service"),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		CacheMaxEntries:  maxEntries,
		CacheTTL:         ttl,
		PrecomputeMatrix: getEnv("PRECOMPUTE_MATRIX", "false") == "true",
		DispatchSchedule: getEnv("DISPATCH_SCHEDULE", "0 7 * * *"),
		AlmanacURL:       getEnv("ALMANAC_URL", ""),
		TelegramToken:    getEnv("TELEGRAM_TOKEN", ""),
		LogLevel:         getEnv("LOG_LEVEL", "debug"),
	}

	return config, nil
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
