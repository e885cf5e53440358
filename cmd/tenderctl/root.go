package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"chainfly-client/application/commands"
	"chainfly-client/application/services"
	"chainfly-client/application/session"
	"chainfly-client/infrastructure/api"
	"chainfly-client/infrastructure/config"
	"chainfly-client/infrastructure/storage"
	pkgerrors "chainfly-client/pkg/errors"
)

// app bundles the wired dependencies one CLI invocation works with. It is
// the CLI's session: constructed at startup, closed on exit.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	client  *api.Client
	session *session.Session
	syncer  *commands.Syncer
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	sess := session.New(client.DownloadHistory(), client.ReminderHistory(), logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		session: sess,
		syncer:  commands.NewSyncer(client, client, client, sess, logger),
	}, nil
}

func (a *app) close() {
	a.session.Close()
	_ = a.logger.Sync()
}

func (a *app) downloadHandler() *commands.DownloadDocumentsHandler {
	assembler := services.NewAssembler(a.client, a.logger)
	sink := storage.NewLocalSink(a.cfg.DownloadDir)
	return commands.NewDownloadDocumentsHandler(assembler, sink, a.session, a.logger)
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsDevelopment() {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

var rootCmd = &cobra.Command{
	Use:   "tenderctl",
	Short: "Command-line front end for the Chainfly tender API",
	Long: `tenderctl browses tenders, uploads and bundles tender documents,
and manages deadline reminders against a Chainfly tender server.`,
	SilenceUsage: true,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the tender server is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if !a.client.Ping(context.Background()) {
			return fmt.Errorf("server at %s is not responding", a.cfg.APIBaseURL)
		}
		fmt.Printf("Server at %s is up\n", a.cfg.APIBaseURL)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// userError converts an application error into the message the CLI prints
func userError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s", pkgerrors.UserMessage(err))
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tendersCmd)
	rootCmd.AddCommand(documentsCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dashboardCmd)
}
