package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webpconv/logger"
)

func main() {
	console := logger.NewConsole(logger.DefaultOptions())

	cfg, err := ParseConfig(console)
	if err != nil {
		os.Stderr.WriteString("Configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := checkEncoder(); err != nil {
		console.Error("WebP encoder unavailable: %v", err)
		os.Exit(1)
	}

	converter, err := NewConverter(cfg, console)
	if err != nil {
		console.Error("%v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := converter.ConvertAll(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			console.Warn("Conversion cancelled by user")
		} else {
			console.Error("Processing error: %v", err)
		}
		os.Exit(1)
	}

	displayResults(console, stats)

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

func displayResults(console *logger.Console, stats Stats) {
	table := console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Total files", fmt.Sprintf("%d", stats.Total))
	table.AddRow("Converted", fmt.Sprintf("%d", stats.Converted))
	table.AddRow("Failed", fmt.Sprintf("%d", stats.Failed))

	console.Info("Conversion complete!")
	table.Print()

	if stats.Failed == 0 {
		console.Success("All processing completed successfully")
	}
}
