package main

import (
	"os"
	"os/signal"
	"syscall"

	"spa-roster/internal/config"
	"spa-roster/internal/handler"
	"spa-roster/internal/repository"
	"spa-roster/internal/roster"
	"spa-roster/internal/service"
	"spa-roster/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.GetAppConfig()

	logger, logCloser, err := cfg.NewLogger()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open log file")
	}
	defer logCloser.Close()

	logger.WithFields(logrus.Fields{
		"employees_file":    cfg.EmployeesFile,
		"appointments_file": cfg.AppointmentsFile,
		"activity_db":       cfg.ActivityDBPath,
	}).Info("Config initialized")

	// Журнал действий в SQLite, если не отключён
	var activityRepo repository.ActivityRepository
	if cfg.ActivityEnabled() {
		db, err := gorm.Open(sqlite.Open(cfg.ActivityDBPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			logger.WithError(err).Fatal("Failed to open activity database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get database instance")
		}
		defer sqlDB.Close()

		// WAL, чтобы журнал можно было читать, пока программа работает
		if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL"); err != nil {
			logger.Warnf("Failed to enable WAL: %v", err)
		}

		gormRepo, err := repository.NewGormActivityRepository(db, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create activity repository")
		}
		activityRepo = gormRepo
	}
	activity := service.NewActivityService(activityRepo, logger)
	logger.WithField("session_id", activity.SessionID()).Info("Session started")

	// Уведомления в Telegram необязательны
	var notifier service.Notifier
	if cfg.NotificationsEnabled() {
		client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramChatID, cfg.TelegramDebug)
		if err != nil {
			logger.WithError(err).Warn("Failed to create Telegram client, notifications disabled")
		} else {
			logger.Infof("Authorized on account %s", client.Username())
			notifier = client
		}
	}

	r := service.NewSharedRoster(roster.New())
	files := repository.NewFileRosterRepository(cfg.EmployeesFile, cfg.AppointmentsFile, logger)
	storage := service.NewStorageService(files, r, activity, logger)

	report, err := storage.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load roster")
	}
	if len(report.Dropped) > 0 || len(report.Rekeyed) > 0 {
		logger.Warnf("Loaded with %d dropped and %d re-keyed record(s), see log for details",
			len(report.Dropped), len(report.Rekeyed))
	}

	console := handler.NewHandler(
		os.Stdin,
		os.Stdout,
		service.NewEmployeeService(r, activity, logger),
		service.NewAppointmentService(r, activity, notifier, logger),
		activity,
		storage,
		logger,
	)

	// Обработка сигналов: при Ctrl+C тоже сохраняем
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- console.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.WithError(err).Error("Console stopped with error")
		}
	case sig := <-stop:
		logger.WithField("signal", sig.String()).Info("Interrupted, saving roster")
	}

	if err := storage.Save(); err != nil {
		logger.WithError(err).Error("Failed to save roster on exit")
		logCloser.Close()
		os.Exit(1)
	}

	logger.Info("Roster saved, goodbye")
}
