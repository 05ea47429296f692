package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"feedboard/internal/api"
	"feedboard/internal/config"
	"feedboard/internal/session"
	sessionsqlite "feedboard/internal/session/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "feedboard",
	Short: "Client for the feedboard backend",
	Long: `feedboard drives the social feed backend from the terminal or
through a local web gateway: login, the post feed with comments and
reactions, and the user administration panel.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// app bundles the pieces every command wires up: configuration, the
// sqlite-backed session store and the backend client.
type app struct {
	cfg      config.Config
	logger   *logrus.Logger
	db       *sql.DB
	sessions *session.Manager
	client   *api.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db, err := sessionsqlite.Open(cfg.Session.Path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	store := sessionsqlite.NewStore(db)
	if err := store.Init(cmd.Context()); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		sessions: session.NewManager(store),
		client:   api.NewClient(cfg.API.BaseURL, nil, logger),
	}, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}
