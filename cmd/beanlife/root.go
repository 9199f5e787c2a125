package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gocrud/beanlife"
	"github.com/gocrud/beanlife/config"
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/logging"
)

const defaultConfigPath = "beanlife.yaml"

type rootOptions struct {
	configPath  string
	environment string
	beanName    string
	debug       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "beanlife",
		Short:        "Walk a controller through its bean lifecycle",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLifecycle(cmd, opts, false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "YAML configuration file")
	flags.StringVar(&opts.environment, "env", "", "override app.environment")
	flags.StringVar(&opts.beanName, "bean-name", "", "override the lifecycle controller's bean name")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRunCmd(opts), newStagesCmd())
	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bootstrap, call both controllers, then shut down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLifecycle(cmd, opts, wait)
		},
	}
	cmd.Flags().BoolVar(&wait, "wait", false, "block until SIGINT/SIGTERM before destroying beans")
	return cmd
}

func newStagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the lifecycle stages in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, stage := range lifecycle.Sequence {
				if _, err := fmt.Fprintln(out, stage.Label()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runLifecycle(cmd *cobra.Command, opts *rootOptions, wait bool) error {
	settings, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	logger := newLogger(settings, cmd.ErrOrStderr())
	report, err := beanlife.Run(cmd.Context(), settings, logger, beanlife.RunOptions{Wait: wait})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "greeting: %s\n", report.Greeting); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "environment: %s\n", report.Environment)
	return err
}

func loadSettings(cmd *cobra.Command, opts *rootOptions) (config.Settings, error) {
	// 只有显式指定的配置文件才必须存在
	optional := !cmd.Flags().Changed("config")

	cfg, err := config.Build(opts.configPath, optional)
	if err != nil {
		return config.Settings{}, err
	}
	settings, err := config.LoadSettings(cfg)
	if err != nil {
		return config.Settings{}, err
	}

	if opts.environment != "" {
		settings.App.Environment = opts.environment
	}
	if opts.beanName != "" {
		settings.Bean.Name = opts.beanName
	}
	if opts.debug {
		settings.Logging.Level = "debug"
	}
	return settings, settings.Validate()
}

func newLogger(settings config.Settings, out io.Writer) logging.Logger {
	level, _ := logging.ParseLevel(settings.Logging.Level)
	factory := logging.NewLoggingBuilder().
		SetMinimumLevel(level).
		AddConsole(logging.ConsoleLoggerOptions{
			IncludeTimestamp: true,
			TimestampFormat:  "2006-01-02 15:04:05",
			ColorOutput:      settings.Logging.Color,
			Format:           logging.OutputFormat(settings.Logging.Format),
			Output:           out,
		}).
		Build()
	return factory.CreateLogger(settings.App.Name)
}
