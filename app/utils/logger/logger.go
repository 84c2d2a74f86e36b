package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once     sync.Once
	instance *logrus.Logger
)

func GetLogger() *logrus.Logger {
	once.Do(func() {
		instance = logrus.New()
		instance.SetOutput(os.Stdout)
		instance.SetFormatter(&logrus.JSONFormatter{})
		instance.SetLevel(logrus.InfoLevel)
	})
	return instance
}

// SetLevel accepts any logrus level name; unknown names keep the current level.
func SetLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		GetLogger().Warnf("unknown log level %q, keeping %s", level, GetLogger().GetLevel())
		return
	}
	GetLogger().SetLevel(parsed)
}
