// Package main provides the Ringzauber conversational browser. User
// requests typed in plain language are translated by the Praterich
// assistant into structured browser commands and executed against a
// real Chromium session, either interactively in the terminal or as a
// scripted headless run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stenoip/ringzauber/pkg/assistant"
	"github.com/stenoip/ringzauber/pkg/browser"
	appconfig "github.com/stenoip/ringzauber/pkg/config"
	"github.com/stenoip/ringzauber/pkg/dispatch"
	"github.com/stenoip/ringzauber/pkg/executor/headless"
	"github.com/stenoip/ringzauber/pkg/executor/tui"
	"github.com/stenoip/ringzauber/pkg/llm/openai"
	"github.com/stenoip/ringzauber/pkg/logging"
	"github.com/stenoip/ringzauber/pkg/session"
	"github.com/stenoip/ringzauber/pkg/translator"
)

const (
	version      = "0.1.0"
	defaultModel = openai.DefaultModel
	header       = "Ringzauber"
)

// Config holds the application configuration
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	ConfigPath  string
	RunConfig   string
	PDFDir      string
	HomeURL     string
	Engine      string
	Headless    bool
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("Ringzauber v%s\n", version)
		return
	}

	if err := config.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	if runErr := run(ctx, config); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags and environment variables
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.APIKey, "api-key", os.Getenv("OPENAI_API_KEY"), "OpenAI API key (or set OPENAI_API_KEY env var)")
	flag.StringVar(&config.BaseURL, "base-url", os.Getenv("OPENAI_BASE_URL"), "OpenAI API base URL (or set OPENAI_BASE_URL env var)")
	flag.StringVar(&config.Model, "model", defaultModel, "LLM model to use")
	flag.StringVar(&config.ConfigPath, "config", "", "Path to config file (default: ~/.ringzauber/config.json)")
	flag.StringVar(&config.RunConfig, "run", "", "Path to a scripted run file (YAML); enables headless mode")
	flag.StringVar(&config.PDFDir, "pdf-dir", ".", "Directory for PRINT_TO_PDF output")
	flag.StringVar(&config.HomeURL, "home", "", "Home page for new tabs (overrides config)")
	flag.StringVar(&config.Engine, "engine", "", "Default search engine: google, duckduckgo, yahoo, ecosia (overrides config)")
	flag.BoolVar(&config.Headless, "headless", false, "Run the browser without a visible window")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Ringzauber - a conversational browser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ringzauber [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_API_KEY     OpenAI API key\n")
		fmt.Fprintf(os.Stderr, "  OPENAI_BASE_URL    OpenAI API base URL (for compatible APIs)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ringzauber                                 # Interactive session\n")
		fmt.Fprintf(os.Stderr, "  ringzauber -engine duckduckgo\n")
		fmt.Fprintf(os.Stderr, "  ringzauber -run smoke.yaml -headless       # Scripted run\n")
	}

	flag.Parse()
	return config
}

// validate checks that the configuration is valid
func (c *Config) validate() error {
	if c.RunConfig != "" {
		if _, err := os.Stat(c.RunConfig); err != nil {
			return fmt.Errorf("run config error: %w", err)
		}
	}
	if c.PDFDir != "" {
		info, err := os.Stat(c.PDFDir)
		if err != nil {
			return fmt.Errorf("pdf directory error: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("pdf path %q is not a directory", c.PDFDir)
		}
	}
	return nil
}

// run wires the full pipeline and hands it to an executor.
func run(ctx context.Context, config *Config) error {
	if err := appconfig.Initialize(config.ConfigPath); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	logger, err := logging.NewLogger("ringzauber")
	if err != nil {
		logger.Warnf("Failed to initialize logger, using stderr fallback: %v", err)
	}
	defer logger.Close()

	provider, err := appconfig.BuildProvider(config.Model, config.BaseURL, config.APIKey, defaultModel)
	if err != nil {
		return err
	}

	trans, err := translator.New(provider)
	if err != nil {
		return err
	}

	// Browser engine
	manager := browser.NewManager(browser.Options{
		Headless: config.Headless || config.RunConfig != "",
	})
	if err := manager.Initialize(); err != nil {
		return fmt.Errorf("failed to start browser engine: %w", err)
	}
	defer manager.Shutdown()

	// Session state from config, with flag overrides
	nav := appconfig.GetNavigation()
	policy, err := nav.Policy()
	if err != nil {
		return fmt.Errorf("invalid navigation blocklist: %w", err)
	}

	homeURL := nav.GetHomeURL()
	if config.HomeURL != "" {
		homeURL = config.HomeURL
	}
	engine := appconfig.GetSearch().Engine()
	if config.Engine != "" {
		engine = session.ParseEngine(config.Engine)
	}

	state, err := session.New(session.Config{
		Opener:  manager,
		HomeURL: homeURL,
		Engine:  engine,
		Policy:  policy,
	})
	if err != nil {
		return err
	}

	dispatcher, err := dispatch.New(dispatch.Deps{
		State:      state,
		Translator: trans,
		Logger:     logger,
		PDFDir:     config.PDFDir,
	})
	if err != nil {
		return err
	}

	coordinatorOpts := []assistant.Option{assistant.WithLogger(logger)}
	if timeout := appconfig.GetAssistant().Timeout(); timeout > 0 {
		coordinatorOpts = append(coordinatorOpts, assistant.WithTimeout(timeout))
	}
	coordinator, err := assistant.New(trans, coordinatorOpts...)
	if err != nil {
		return err
	}
	defer coordinator.Close()

	if config.RunConfig != "" {
		runConfig, err := headless.LoadConfig(config.RunConfig)
		if err != nil {
			return err
		}
		executor, err := headless.NewExecutor(coordinator, dispatcher, state, runConfig)
		if err != nil {
			return err
		}
		return executor.Run(ctx)
	}

	executor := tui.NewExecutor(coordinator, dispatcher, state, header)
	return executor.Run(ctx)
}
