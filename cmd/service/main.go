package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/abcde-dev/abcdecom/internal"
	"github.com/abcde-dev/abcdecom/internal/config"
	"github.com/abcde-dev/abcdecom/internal/logging"
	"github.com/abcde-dev/abcdecom/pkg"

	log "github.com/sirupsen/logrus"
)

// secrets never live in config.toml, only in the environment
type secrets struct {
	jwtSecret        string
	smtpUsername     string
	smtpPassword     string
	redisPassword    string
	sentryDSN        string
	honeycombEnabled bool
}

func main() {
	fmt.Println("starting abcde backend ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	envSecrets := readSecrets()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        envSecrets.sentryDSN,
		SentryServerName: "abcde-backend",
	})
	log.WithFields(log.Fields{
		"env":  *env,
		"port": cfg.Port,
		"logs": cfg.LogsPath,
	}).Warn("---->> config loaded")

	if envSecrets.jwtSecret == "" {
		log.Fatalln("jwt secret not set. use ABCDE_JWT_SECRET")
	}
	if envSecrets.smtpUsername == "" || envSecrets.smtpPassword == "" {
		log.Errorln("smtp credentials not set. use ABCDE_SMTP_USERNAME and ABCDE_SMTP_PASSWORD")
	}
	if envSecrets.redisPassword == "" {
		log.Warnln("redis password not set. use ABCDE_REDIS_PASS")
	}
	if envSecrets.honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb enabled but HONEYCOMB_API_KEY not set")
	}
	if !cfg.RequireAdminAuth {
		log.Warnln("admin auth disabled, admin routes are publicly reachable")
	}

	versionInfo := resolveVersion()
	log.Debugf("running version: [%s]", versionInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		VersionInfo:             versionInfo,
		JWTSecret:               envSecrets.jwtSecret,
		SMTPUsername:            envSecrets.smtpUsername,
		SMTPPassword:            envSecrets.smtpPassword,
		RedisPassword:           envSecrets.redisPassword,
		HoneycombTracingEnabled: envSecrets.honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, stopping ...")
	server.GracefulShutdown()
}

func readSecrets() secrets {
	return secrets{
		jwtSecret:        os.Getenv("ABCDE_JWT_SECRET"),
		smtpUsername:     os.Getenv("ABCDE_SMTP_USERNAME"),
		smtpPassword:     os.Getenv("ABCDE_SMTP_PASSWORD"),
		redisPassword:    os.Getenv("ABCDE_REDIS_PASS"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
}

// resolveVersion prefers the vcs revision stamped by the go toolchain,
// falling back to git when running from the project root.
func resolveVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}

	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Tracef("git rev-parse: %s", err)
		return "unknown"
	}
	return strings.TrimSpace(pkg.BytesToString(out))
}
