package cmd

import (
	"github.com/spf13/cobra"

	"github.com/finovahq/agentdesk/internal/config"
	"github.com/finovahq/agentdesk/internal/errors"
	"github.com/finovahq/agentdesk/internal/log"
	"github.com/finovahq/agentdesk/internal/platform"
	"github.com/finovahq/agentdesk/internal/session"
	"github.com/finovahq/agentdesk/internal/ux"
)

var platformClient *platform.Client

// getClient builds the shared platform client: config, logger, and the
// file-backed session store under ~/.agentdesk
func getClient() (*platform.Client, error) {
	if platformClient != nil {
		return platformClient, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	platformClient = platform.NewClient(cfg.BaseURL(), session.NewFileStore(dir)).
		WithLogger(logger)
	return platformClient, nil
}

// getAuthenticatedClient is getClient plus a session presence check
func getAuthenticatedClient() (*platform.Client, error) {
	client, err := getClient()
	if err != nil {
		return nil, err
	}
	if !client.IsAuthenticated() {
		return nil, errors.NewNotLoggedInError()
	}
	return client, nil
}

// formatterFor builds a ux formatter from the command's --output flag
func formatterFor(cmd *cobra.Command) (ux.Formatter, error) {
	format, _ := cmd.Flags().GetString("output")
	return ux.NewFormatter(format, nil)
}

// addOutputFlag registers the shared --output flag on a command
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "table", "output format (table, json, yaml)")
}
