package logger

import (
	"os"
	"sync"
	"time"

	"Spendly/config"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

func init() {
	// Sane default so packages can log before Init runs (tests, tooling).
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configures the global logger from config. Safe to call once at startup.
func Init(cfg *config.Config) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = zerolog.InfoLevel
		}

		var logger zerolog.Logger
		if cfg.Log.Pretty {
			output := zerolog.ConsoleWriter{
				Out:        os.Stdout,
				TimeFormat: time.RFC3339,
			}
			logger = zerolog.New(output)
		} else {
			logger = zerolog.New(os.Stdout)
		}

		log = logger.Level(level).With().
			Timestamp().
			Str("app", cfg.App.Name).
			Logger()
	})
}

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
func Fatal() *zerolog.Event { return log.Fatal() }
