package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Init инициализирует глобальный логгер.
// Вызывается один раз при старте (cmd/dusk) и в TestMain пакетов.
func Init() {
	Log = logrus.New()

	// Уровень логирования из окружения, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, "text" - для терминала.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// Логи пишем в stderr: stdout занят игровым выводом в режиме play.
	Log.SetOutput(os.Stderr)
}

// SetOutput перенаправляет вывод логгера (например, в io.Discard для тестов).
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// Component возвращает логгер с проставленным полем component.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
