package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"volunteer-tracker-go/internal/app"
	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/db"
	"volunteer-tracker-go/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "volunteerctl",
	Short: "Administer the volunteer hours tracker",
	Long: `volunteerctl runs maintenance tasks against the tracker database.

It reads the same environment (and .env file) as the server, so DB_DRIVER,
DB_DSN and DB_PATH select the database.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stdout")
}

func newLogger() logger.Logger {
	if verbose {
		return logger.NewFromEnv()
	}
	return logger.NewNop()
}

// session is an open, migrated database with services wired on top.
type session struct {
	db       *gorm.DB
	services *app.Services
	log      logger.Logger
}

func openSession(ctx context.Context, migrate bool) (*session, error) {
	log := newLogger()
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	gormDB, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if migrate {
		if _, err := db.Migrate(ctx, gormDB); err != nil {
			_ = db.Close(gormDB)
			return nil, err
		}
	}

	return &session{
		db:       gormDB,
		services: app.NewServices(cfg, gormDB),
		log:      log,
	}, nil
}

func (s *session) Close() {
	_ = db.Close(s.db)
}
