package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/config"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/credentials"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/gateway"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/i18n"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/log"
	"github.com/Universal-Micro-Networks/daily-standup-frontend/internal/session"
)

// appContext wires the pieces every command needs: configuration,
// logger, the gateway client, the session store and the translator.
// Commands build it in their RunE via newAppContext.
type appContext struct {
	Config     config.Config
	ConfigPath string
	Logger     *log.Logger
	Creds      *credentials.FileStore
	Client     *gateway.Client
	Store      *session.Store
	Tr         *i18n.Translator
}

// newAppContext loads configuration (flags over env over file over
// defaults) and assembles the client stack. The gateway's unauthorized
// callback is wired to the session store here, before any request.
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	credPath, err := credentials.DefaultPath()
	if err != nil {
		return nil, err
	}
	creds := credentials.NewFileStore(credPath)

	client := gateway.NewClient(cfg.APIBaseURL, creds,
		gateway.WithTimeout(cfg.Timeout()),
		gateway.WithLogger(logger),
	)

	store := session.NewStore(client, creds, logger)
	client.SetUnauthorizedCallback(store.HandleUnauthorized)

	tr, err := i18n.New(i18n.Resolve(cfg.Language))
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	return &appContext{
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		Creds:      creds,
		Client:     client,
		Store:      store,
		Tr:         tr,
	}, nil
}

// requireSession restores the session from the stored token and fails
// with a login hint if none is valid. Commands that talk to protected
// endpoints call this first.
func (a *appContext) requireSession(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := a.Store.Initialize(ctx); err != nil {
		if session.IsProfileFetchFailed(err) {
			return fmt.Errorf("session expired, run 'standup login' first")
		}
		return err
	}
	if !a.Store.IsAuthenticated() {
		return fmt.Errorf("not logged in, run 'standup login' first")
	}
	return nil
}
