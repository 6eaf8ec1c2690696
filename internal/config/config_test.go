package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SPA_EMPLOYEES_FILE", "SPA_APPOINTMENTS_FILE", "SPA_ACTIVITY_DB", "SPA_LOG_LEVEL", "SPA_TELEGRAM_TOKEN", "SPA_TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	// пустая переменная считается заданной
	if cfg.EmployeesFile != "" {
		t.Fatalf("EmployeesFile = %q", cfg.EmployeesFile)
	}
	if cfg.ActivityEnabled() {
		t.Fatal("empty activity path must disable the journal")
	}
	if cfg.NotificationsEnabled() {
		t.Fatal("notifications must be off without token")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SPA_EMPLOYEES_FILE", "/data/emp.txt")
	t.Setenv("SPA_ACTIVITY_DB", ActivityDisabled)
	t.Setenv("SPA_TELEGRAM_TOKEN", "token")
	t.Setenv("SPA_TELEGRAM_CHAT_ID", "-1001")
	t.Setenv("SPA_TELEGRAM_DEBUG", "true")

	cfg := Load()
	if cfg.EmployeesFile != "/data/emp.txt" {
		t.Fatalf("EmployeesFile = %q", cfg.EmployeesFile)
	}
	if cfg.ActivityEnabled() {
		t.Fatal("'-' must disable the journal")
	}
	if !cfg.NotificationsEnabled() || cfg.TelegramChatID != -1001 || !cfg.TelegramDebug {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestGetEnvAsInt_FallsBack(t *testing.T) {
	t.Setenv("SPA_TELEGRAM_CHAT_ID", "abc")
	if got := getEnvAsInt("SPA_TELEGRAM_CHAT_ID", 7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &AppConfig{LogLevel: "loud"}
	logger, closer, err := cfg.NewLogger()
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if logger.GetLevel().String() != "warning" {
		t.Fatalf("level = %s", logger.GetLevel())
	}
}
