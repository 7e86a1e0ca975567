package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(debug bool) *logrus.Logger {
	level := logrus.InfoLevel
	if debug {
		level = logrus.DebugLevel
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	return &logger
}
