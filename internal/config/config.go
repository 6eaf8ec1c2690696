package config

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ActivityDisabled значение SPA_ACTIVITY_DB, отключающее журнал
const ActivityDisabled = "-"

type AppConfig struct {
	EmployeesFile    string
	AppointmentsFile string
	ActivityDBPath   string
	LogLevel         string
	LogFile          string

	TelegramToken  string
	TelegramChatID int64
	TelegramDebug  bool
}

var instance *AppConfig
var once sync.Once

func GetAppConfig() *AppConfig {
	once.Do(func() {
		// .env необязателен: без него берём переменные окружения и значения по умолчанию
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err.Error())
		}

		instance = Load()
	})

	return instance
}

// Load читает конфигурацию из окружения без кеширования
func Load() *AppConfig {
	return &AppConfig{
		EmployeesFile:    getEnv("SPA_EMPLOYEES_FILE", "employees.txt"),
		AppointmentsFile: getEnv("SPA_APPOINTMENTS_FILE", "appointments.txt"),
		ActivityDBPath:   getEnv("SPA_ACTIVITY_DB", "spa_activity.db"),
		LogLevel:         getEnv("SPA_LOG_LEVEL", "warn"),
		LogFile:          getEnv("SPA_LOG_FILE", ""),
		TelegramToken:    getEnv("SPA_TELEGRAM_TOKEN", ""),
		TelegramChatID:   getEnvAsInt("SPA_TELEGRAM_CHAT_ID", 0),
		TelegramDebug:    getEnvAsBool("SPA_TELEGRAM_DEBUG", false),
	}
}

func (c *AppConfig) ActivityEnabled() bool {
	return c.ActivityDBPath != "" && c.ActivityDBPath != ActivityDisabled
}

func (c *AppConfig) NotificationsEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// NewLogger настраивает logrus по конфигу. Логи не должны мешать меню,
// поэтому по умолчанию уровень warn, а вывод можно направить в файл.
func (c *AppConfig) NewLogger() (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warnf("unknown log level %q, using warn", c.LogLevel)
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	if c.LogFile == "" {
		logger.SetOutput(os.Stderr)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f, nil
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}

	return defaultVal
}
