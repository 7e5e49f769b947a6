package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/edithqa/edith/internal/executor"
	"github.com/edithqa/edith/internal/gateway"
	"github.com/edithqa/edith/internal/observability"
	"github.com/edithqa/edith/internal/planner"
	"github.com/edithqa/edith/internal/store"
	"github.com/edithqa/edith/internal/suite"
	"github.com/edithqa/edith/internal/supervisor"
	"github.com/edithqa/edith/internal/verifier"
	"github.com/edithqa/edith/pkg/config"
)

const defaultGoal = "Enable Airplane Mode from Settings"

// recordedRunner persists every completed report to the run store and the
// JSON report log before handing it back. Both the CLI loop and the gateway
// run goals through it, so run history is complete in either mode.
type recordedRunner struct {
	runner gateway.Runner
	runs   *store.RunStore
	logDir string
}

func (r *recordedRunner) Run(ctx context.Context, goal string) (*supervisor.TaskReport, error) {
	report, err := r.runner.Run(ctx, goal)
	if err != nil {
		return nil, err
	}
	if err := saveReport(r.logDir, report); err != nil {
		log.Printf("Warning: failed to write report file: %v", err)
	}
	if err := r.runs.Save(report); err != nil {
		log.Printf("Warning: failed to record run: %v", err)
	}
	return report, nil
}

func main() {
	configPath := flag.String("config", "config.json", "path to the config file")
	suitePath := flag.String("suite", "", "YAML suite of goals to run back to back")
	flag.Parse()

	observability.PrintBanner()

	cfg := config.LoadConfig(*configPath)

	pName, pCfg := cfg.GetDefaultProvider()
	if pName == "" {
		log.Fatal("No enabled provider found in config")
	}
	if pCfg.APIKey == "" {
		pCfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if pCfg.APIKey == "" {
		log.Fatal(planner.ErrNoAPIKey)
	}

	var llm llms.Model
	var err error
	switch pName {
	case "openai", "openrouter":
		opts := []openai.Option{
			openai.WithToken(pCfg.APIKey),
			openai.WithModel(pCfg.Model),
		}
		if pCfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
		}
		llm, err = openai.New(opts...)
	default:
		log.Fatalf("Provider %s not yet implemented in main", pName)
	}
	if err != nil {
		log.Fatal(err)
	}

	logger := observability.NewLogger(cfg.App.LogDir)
	sup := supervisor.New(
		planner.New(llm),
		executor.NewMock(cfg.App.ImageDir, cfg.StepDelay()),
		verifier.New(),
		logger,
	)

	runs, err := store.NewRunStore(cfg.Memory.Path)
	if err != nil {
		log.Fatal(err)
	}
	defer runs.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &recordedRunner{runner: sup, runs: runs, logDir: cfg.App.LogDir}

	// Gateway mode: listen for goals over Telegram instead of running once.
	if tgCfg, ok := cfg.GetTelegramConfig(); ok {
		tg, err := gateway.NewTelegramGateway(tgCfg.Token, runner, runs)
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			<-ctx.Done()
			tg.Stop()
		}()
		if err := tg.Start(); err != nil {
			log.Fatal(err)
		}
		return
	}

	goals := []string{defaultGoal}
	if *suitePath != "" {
		s, err := suite.Load(*suitePath)
		if err != nil {
			log.Fatal(err)
		}
		goals = s.Goals
		log.Printf("Running suite %q (%d goals)", s.Name, len(goals))
	} else if flag.NArg() > 0 {
		goals = []string{strings.Join(flag.Args(), " ")}
	}

	passed := 0
	for _, goal := range goals {
		start := time.Now()
		report, err := runner.Run(ctx, goal)
		if err != nil {
			log.Fatal(err)
		}
		if report.Success {
			passed++
		}

		observability.PrintRunSummary(goal, report.Verdict, time.Since(start))
	}

	if len(goals) > 1 {
		log.Printf("Suite complete: %d/%d goals passed", passed, len(goals))
	}
}

// saveReport writes the report plus a timestamp to {logDir}/{runID}.json.
func saveReport(logDir string, report *supervisor.TaskReport) error {
	entry := struct {
		Timestamp string `json:"timestamp"`
		*supervisor.TaskReport
	}{
		Timestamp:  time.Now().Format(time.RFC3339),
		TaskReport: report,
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(logDir, report.RunID+".json"), data, 0644)
}
