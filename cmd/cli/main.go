package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-assistant/config"
	"travel-assistant/internal/app"
	"travel-assistant/pkg/log"
)

// main runs an interactive travel assistant conversation in the terminal.
func main() {
	reasoning := flag.Bool("reasoning", false, "show step-by-step reasoning for complex questions")
	plain := flag.Bool("plain", false, "print replies without markdown rendering")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to initialize assistant: ", err)
		fmt.Println("Please check your .env file and API keys.")
		return
	}

	// Pipeline steps stay out of the conversation unless they are warnings.
	logCfg := app.LoggerConfig(cfg)
	logCfg.Level = "warn"
	logger := log.Init(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := app.Build(cfg, logger, nil)
	if err != nil {
		fmt.Println("Failed to initialize assistant: ", err)
		fmt.Println("Please check your .env file and API keys.")
		return
	}

	showReasoning := *reasoning || cfg.Assistant.ShowChainOfThought
	r := newREPL(os.Stdin, os.Stdout, pipeline.Factory(showReasoning), !*plain)
	r.banner()
	fmt.Println("Assistant initialized successfully!")
	r.run(ctx)
}
