package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finovahq/agentdesk/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change client configuration",
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the resolved configuration",
	Long: `Show the resolved configuration after applying defaults, the
config file, and environment variables (in that order).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("cannot render config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a setting to the config file",
	Long: `Write a setting to ~/.agentdesk/config.yaml.

Keys:
  backend_host   Backend base URL (e.g. https://collections.example.com)
  log_level      debug, info, warn, error
  log_format     text, json

Examples:
  agentdesk config set backend_host https://collections.example.com
  agentdesk config set log_level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "backend_host":
			cfg.BackendHost = value
		case "log_level":
			cfg.LogLevel = value
		case "log_format":
			cfg.LogFormat = value
		default:
			return fmt.Errorf("unknown config key: %s (valid: backend_host, log_level, log_format)", key)
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("%s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
