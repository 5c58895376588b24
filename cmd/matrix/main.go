// Package main implements the destiny matrix command-line client, which
// calculates and prints matrix readings without running the HTTP server.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/destiny-matrix/internal/config"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// cli holds the state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	logLevel   string

	logger *slog.Logger
	svc    service.MatrixService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "matrix",
		Short: "Calculate destiny matrix readings from birth dates",
		Long: `matrix derives the eleven-position destiny matrix of a birth date and
prints its interpretation: the grid, key numbers, digit frequencies, energies
and special combinations.

Dates are accepted as YYYY-MM-DD, DD.MM.YYYY or an RFC 3339 timestamp.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a config file (default: config.yaml lookup and DESTINY_* env)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newCalcCmd(c), newPositionsCmd(c))
	return root
}

// setup loads configuration, installs the logger and builds the matrix
// service. Logs go to w so that stdout carries only command output.
func (c *cli) setup(w io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.logLevel != "" {
		cfg.Server.LogLevel = c.logLevel
	}
	c.logger, err = logger.SetupWithWriter(cfg.Server, w)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	interpreter := numerology.NewServiceWithParams(numerology.NewParams(numerology.ParamsConfig{
		StrongThreshold: cfg.Matrix.StrongThreshold,
		TriadThreshold:  cfg.Matrix.TriadThreshold,
	}))
	c.svc, err = service.NewMatrixService(
		interpreter,
		service.Config{
			BatchMaxSize:     cfg.Matrix.BatchMaxSize,
			BatchConcurrency: cfg.Matrix.BatchConcurrency,
		},
		c.logger,
		nil,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to create matrix service: %w", err)
	}
	return nil
}
