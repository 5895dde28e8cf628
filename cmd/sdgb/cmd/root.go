package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iudanet/sdgb/internal/config"
	"github.com/iudanet/sdgb/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Глобальное состояние команды, заполняется в PersistentPreRunE
var (
	cfg *config.Config
	log *zap.Logger
)

// Глобальные флаги
var (
	configFile string
	userIDFlag string
	ownerFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "sdgb",
	Short: "sdgb is a client for the SDGB game server",
	Long: `A client for the SDGB rhythm-game server: account preview and logout,
score upload, item unlocks, tickets, rating calculation and update delivery.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if err := bindFlags(v, cmd.Root().PersistentFlags()); err != nil {
			return err
		}

		loaded, err := config.Load(v, configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		log, err = logger.New(cfg.Log.Env)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// configFlags - флаги, которые переопределяют ключи конфигурации
var configFlags = map[string]string{
	"log-env":          "log.env",
	"recovery-backend": "recovery.backend",
	"recovery-path":    "recovery.path",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range configFlags {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "path to config file (default ./sdgb.yaml)")
	flags.StringVarP(&userIDFlag, "user-id", "u", "", "game user id")
	flags.StringVar(&ownerFlag, "owner", "", "resolve the user id from a binding of this owner")
	flags.String("log-env", "dev", "logger profile: dev or prod")
	flags.String("recovery-backend", "bolt", "recovery store: bolt, sqlite or redis")
	flags.String("recovery-path", "sdgb.db", "recovery store file for bolt and sqlite")
}
