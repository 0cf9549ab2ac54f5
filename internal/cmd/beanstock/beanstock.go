// Package beanstock parses inventory shell configuration and runs the shell.
package beanstock

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	entrypoint "github.com/louisbranch/beanstock/internal/platform/cmd"
	"github.com/louisbranch/beanstock/internal/platform/config"
	"github.com/louisbranch/beanstock/internal/services/inventory/app"
	"github.com/louisbranch/beanstock/internal/services/inventory/shell"
	"github.com/louisbranch/beanstock/internal/services/inventory/storage/sqlite"
)

const (
	envFileVar      = "BEANSTOCK_ENV_FILE"
	defaultEnvFile  = ".env"
	envFileFlagName = "env-file"
)

// Config holds inventory shell configuration.
type Config struct {
	DBPath        string `env:"BEANSTOCK_DB_PATH" envDefault:"coffee.db"`
	Mode          string `env:"BEANSTOCK_MODE"`
	Locale        string `env:"BEANSTOCK_LOCALE" envDefault:"en-US"`
	EnvFile       string `env:"BEANSTOCK_ENV_FILE" envDefault:".env"`
	BuyerAutoList bool   `env:"BEANSTOCK_BUYER_AUTOLIST"`
}

// ParseConfig loads the dotenv file, then the environment, then flags.
// Variables already set in the environment win over the dotenv file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotEnv(envFilePath(args, os.LookupEnv)); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the inventory SQLite file")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Initial mode: seller or buyer")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale (en-US, pt-BR)")
	fs.StringVar(&cfg.EnvFile, envFileFlagName, cfg.EnvFile, "Dotenv file loaded before the environment")
	fs.BoolVar(&cfg.BuyerAutoList, "buyer-autolist", cfg.BuyerAutoList, "List every row on entering Buyer mode")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := shell.ParseMode(cfg.Mode); err != nil {
		return Config{}, fmt.Errorf("parse mode: %w", err)
	}
	return cfg, nil
}

// envFilePath finds the dotenv path before flags are parsed, since the
// file feeds the defaults those flags start from.
func envFilePath(args []string, lookup func(string) (string, bool)) string {
	for i := 0; i < len(args); i++ {
		name := strings.TrimLeft(args[i], "-")
		if name == args[i] {
			continue
		}
		if value, ok := strings.CutPrefix(name, envFileFlagName+"="); ok {
			return value
		}
		if name == envFileFlagName && i+1 < len(args) {
			return args[i+1]
		}
	}
	if value, ok := lookup(envFileVar); ok {
		return value
	}
	return defaultEnvFile
}

// Run opens the inventory and runs the shell over in and out until quit or
// end of input.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBeanstock, func(ctx context.Context) error {
		return run(ctx, cfg, in, out)
	})
}

func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	mode, err := shell.ParseMode(cfg.Mode)
	if err != nil {
		return fmt.Errorf("parse mode: %w", err)
	}

	log.Printf("opening inventory at %s", cfg.DBPath)
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open inventory store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close inventory store: %v", err)
		}
	}()

	sh := shell.New(app.NewService(store), out, shell.Options{
		Locale:        cfg.Locale,
		Prompt:        isTerminal(in),
		BuyerAutoList: cfg.BuyerAutoList,
	})
	if mode != shell.ModeNone {
		if err := sh.SetMode(ctx, mode); err != nil {
			log.Printf("inventory storage failure: %v", err)
			return err
		}
	}
	if err := sh.Run(ctx, in); err != nil {
		log.Printf("inventory shell stopped: %v", err)
		return err
	}
	return nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
