package cmd

import (
	"fmt"

	"github.com/boswell-ai/boswell-mcp/internal/api"
	"github.com/boswell-ai/boswell-mcp/internal/boswell"
	"github.com/boswell-ai/boswell-mcp/internal/config"
	"github.com/boswell-ai/boswell-mcp/internal/service/tool"
	"github.com/boswell-ai/boswell-mcp/internal/telemetry"
	"github.com/boswell-ai/boswell-mcp/pkg/version"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startServerCmdConfigFile string

var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Boswell MCP gateway",
	Long: "Starts the gateway HTTP server.\n\n" +
		"The gateway translates MCP tool calls into requests against the Boswell API.\n" +
		"Set the " + config.BackendURLEnvVar + " environment variable to the backend's base URL.\n" +
		"The bind port is read from " + config.BindPortEnvVar + " (default " + config.BindPortDefault + ").\n" +
		"Set " + config.OtelEnabledEnvVar + "=true to expose Prometheus metrics on /metrics.\n" +
		"All settings can also be supplied in a YAML file via --config; environment variables win.",
	RunE: runStartServer,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "1",
	},
}

func init() {
	startServerCmd.Flags().StringVar(
		&startServerCmdConfigFile,
		"config",
		"",
		"path to an optional YAML config file",
	)
	rootCmd.AddCommand(startServerCmd)
}

func runStartServer(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var fileCfg *config.Config
	if startServerCmdConfigFile != "" {
		var err error
		fileCfg, err = config.LoadFile(afero.NewOsFs(), startServerCmdConfigFile)
		if err != nil {
			return err
		}
	}
	cfg, err := config.Resolve(fileCfg)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	otelConfig := &telemetry.Config{
		ServiceName: version.ServerName,
		Enabled:     cfg.OtelEnabled,
	}
	otelProviders, err := telemetry.Init(cmd.Context(), otelConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize Opentelemetry providers: %v", err)
	}
	defer func() {
		if err := otelProviders.Shutdown(cmd.Context()); err != nil {
			cmd.Printf("Warning: failed to shutdown opentelemetry providers: %v\n", err)
		}
	}()

	// By default a no-op metrics implementation is used so the dispatcher
	// never has to check whether metrics are enabled.
	toolMetrics := telemetry.NewNoopCustomMetrics()
	if otelProviders.IsEnabled() {
		toolMetrics, err = telemetry.NewOtelCustomMetrics(otelProviders.Meter)
		if err != nil {
			return fmt.Errorf("failed to create tool metrics: %v", err)
		}
	}

	backend := boswell.New(cfg.BackendURL, logger)
	toolService := tool.NewService(backend, toolMetrics, logger)

	opts := &api.ServerOptions{
		Port:          cfg.BindPort,
		ToolService:   toolService,
		BackendClient: backend,
		OtelProviders: otelProviders,
		Logger:        logger,
	}
	s, err := api.NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to create server: %v", err)
	}

	logger.Info("gateway starting",
		zap.String("port", cfg.BindPort),
		zap.String("backend", cfg.BackendURL),
		zap.Bool("telemetry", cfg.OtelEnabled),
	)
	cmd.Printf("Boswell MCP gateway listening on :%s\n", cfg.BindPort)
	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to run the server: %v", err)
	}

	return nil
}
