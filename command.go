package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"webpconv/logger"

	"github.com/gen2brain/webp"
)

type Config struct {
	InputDir  string
	OutputDir string
	Version   string
	Quality   int
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func ParseConfig(console *logger.Console) (*Config, error) {
	cfg := &Config{Version: Version}

	flag.StringVar(&cfg.OutputDir, "o", "", "Output folder (default: sibling \"webp\" folder)")
	flag.StringVar(&cfg.OutputDir, "output", "", "Output folder (default: sibling \"webp\" folder)")
	flag.IntVar(&cfg.Quality, "q", 80, "WebP quality (0-100, higher is better)")
	flag.IntVar(&cfg.Quality, "quality", 80, "WebP quality (0-100, higher is better)")

	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		versionInfo := fmt.Sprintf(
			"Version: %s\nBuild date: %s\nGit commit: %s",
			cfg.Version, BuildDate, GitCommit,
		)
		console.Box("webpconv version information", versionInfo)
		os.Exit(0)
	}

	args := flag.Args()

	if len(args) == 0 {
		printUsage(console)
		return nil, fmt.Errorf("no input folder specified")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.InputDir = args[0]

	return cfg, nil
}

func printUsage(console *logger.Console) {
	console.Info("Usage: webpconv [options] <input folder>")
	console.Info("Options:")

	old := flag.CommandLine.Output()

	r, w, _ := os.Pipe()
	flag.CommandLine.SetOutput(w)

	flag.PrintDefaults()

	w.Close()
	flag.CommandLine.SetOutput(old)

	var buf [8192]byte
	n, _ := r.Read(buf[:])
	r.Close()

	for _, line := range strings.Split(string(buf[:n]), "\n") {
		if line != "" {
			console.Log("  %s", line)
		}
	}

	console.Info("Examples:")
	console.Log("  webpconv ./photos")
	console.Log("  webpconv -o ./converted ./photos")
	console.Log("  webpconv --quality 90 ./photos")
}

func (cfg *Config) validate() error {
	if cfg.Quality < 0 || cfg.Quality > 100 {
		return fmt.Errorf("error: quality must be in range 0-100")
	}
	return nil
}

func (cfg *Config) GetEncodingOptions() webp.Options {
	return webp.Options{
		Quality: cfg.Quality,
		Method:  6,
	}
}
