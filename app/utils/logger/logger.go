package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"pokedex.dev/pokedex-api-gateway/config/environment_variables"
)

var (
	once     sync.Once
	instance *logrus.Logger
)

// GetLogger returns the process-wide logger, configured from LOG_LEVEL and LOG_FORMAT on first use.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		instance = logrus.New()
		instance.SetOutput(os.Stdout)
		configure(instance, environment_variables.EnvironmentVariables.LOG_LEVEL, environment_variables.EnvironmentVariables.LOG_FORMAT)
	})
	return instance
}

func configure(l *logrus.Logger, level string, format string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
