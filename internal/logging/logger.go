package logging

import (
	"io"
	"os"
	"strings"

	"github.com/abcde-dev/abcdecom/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const maxLogFileSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// zero values keep rotated files forever
	MaxBackups int
	MaxAgeDays int
}

// Setup configures the global logrus logger: level, format, output sinks and the sentry hook.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, desc := logOutput(params)
	logrus.SetOutput(out)
	logrus.Infof("writing logs to %s", desc)
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		// the hook would only fail on every entry
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Debugln("sentry hook installed")
}

func logOutput(params LoggerSetupParams) (io.Writer, string) {
	if params.LogFileName == "" {
		return os.Stdout, "stdout"
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    maxLogFileSizeMB,
		MaxBackups: params.MaxBackups,
		MaxAge:     params.MaxAgeDays,
		Compress:   true,
	}

	if !params.LogToStdout {
		return rotated, fileName
	}
	return pkg.NewCombinedWriter(os.Stdout, rotated), fileName + " and stdout"
}

// GetLevel parses a level name, falling back to info on anything unknown.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
