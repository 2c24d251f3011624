package dotenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подгружает .env, если он есть, и применяет флаги командной строки
// поверх окружения. Отсутствие файла не ошибка: значения берутся из окружения.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	return ApplyFlags(pflag.CommandLine, os.Args[1:])
}

// ApplyFlags разбирает --port и --log-level и переносит их в окружение,
// откуда их прочитает config.Load.
func ApplyFlags(flags *pflag.FlagSet, args []string) error {
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	logLevelFlag := flags.String("log-level", "", "Log level (overrides LOG_LEVEL environment variable)")

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":      *portFlag,
		"LOG_LEVEL": *logLevelFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		err := os.Setenv(key, value)
		if err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
