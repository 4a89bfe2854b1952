package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"webpconv/logger"

	"github.com/gen2brain/webp"
)

var supportedFormats = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var (
	ErrNotFound      = errors.New("input folder does not exist")
	ErrNotADirectory = errors.New("input path is not a directory")
)

type Converter struct {
	Console   *logger.Console
	InputDir  string
	OutputDir string
	Options   webp.Options
}

type Stats struct {
	Total     int
	Converted int
	Failed    int
}

func NewConverter(cfg *Config, console *logger.Console) (*Converter, error) {
	input := filepath.Clean(cfg.InputDir)

	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, input)
		}
		return nil, fmt.Errorf("input folder validation error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, input)
	}

	output := cfg.OutputDir
	if output == "" {
		output = filepath.Join(filepath.Dir(input), "webp")
	}

	return &Converter{
		InputDir:  input,
		OutputDir: output,
		Options:   cfg.GetEncodingOptions(),
		Console:   console,
	}, nil
}

// FindImages lists the immediate entries of the input folder and returns the
// paths of supported regular files, sorted ascending so processing order is
// stable across runs.
func (c *Converter) FindImages() ([]string, error) {
	entries, err := os.ReadDir(c.InputDir)
	if err != nil {
		return nil, fmt.Errorf("error reading input folder: %w", err)
	}

	var images []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if supportedFormats[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, filepath.Join(c.InputDir, entry.Name()))
		}
	}

	sort.Strings(images)
	return images, nil
}

// ConvertImage converts a single file and reports the outcome on the console.
// Errors never escape; a false return is the only failure signal.
func (c *Converter) ConvertImage(path string) bool {
	outputName := stem(path) + ".webp"

	if err := c.convertFile(path, filepath.Join(c.OutputDir, outputName)); err != nil {
		c.Console.Error("Failed to convert %s: %v", filepath.Base(path), err)
		return false
	}

	c.Console.Success("Converted: %s -> %s", filepath.Base(path), outputName)
	return true
}

func (c *Converter) convertFile(srcPath, dstPath string) (err error) {
	if err = os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return fmt.Errorf("error creating output folder: %w", err)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("error decoding image: %w", err)
	}

	img = normalizeMode(img)

	tempFile, err := os.CreateTemp(c.OutputDir, "*.webp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	tempFileClosed := false
	defer func() {
		if !tempFileClosed {
			tempFile.Close()
		}
		if err != nil {
			if _, statErr := os.Stat(tempPath); statErr == nil {
				os.Remove(tempPath)
			}
		}
	}()

	err = webp.Encode(tempFile, img, c.Options)
	if err != nil {
		return fmt.Errorf("error encoding to WebP: %w", err)
	}

	err = tempFile.Close()
	tempFileClosed = true
	if err != nil {
		return fmt.Errorf("error finishing temporary file: %w", err)
	}

	err = os.Rename(tempPath, dstPath)
	if err != nil {
		return fmt.Errorf("error renaming file: %w", err)
	}

	return nil
}

// ConvertAll runs one batch over the input folder, strictly sequentially.
// Per-file failures are counted and never abort the batch; only a cancelled
// context stops it early, returning the stats accumulated so far.
func (c *Converter) ConvertAll(ctx context.Context) (Stats, error) {
	images, err := c.FindImages()
	if err != nil {
		return Stats{}, err
	}

	if len(images) == 0 {
		c.Console.Warn("No supported image files found in: %s", c.InputDir)
		return Stats{}, nil
	}

	c.Console.Info("Found %d image(s) to convert", len(images))
	c.Console.Info("Input folder: %s", c.InputDir)
	c.Console.Info("Output folder: %s", c.OutputDir)
	c.Console.Info("Quality: %d%%", c.Options.Quality)

	timer := c.Console.StartTimer("Batch conversion")
	bar := c.Console.NewProgressBar(int64(len(images)), "Converting images")

	stats := Stats{Total: len(images)}

	for _, path := range images {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if c.ConvertImage(path) {
			stats.Converted++
		} else {
			stats.Failed++
		}

		bar.Increment(1)
	}

	bar.Complete()
	timer.End()

	return stats, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// checkEncoder probes the WebP encoder with a throwaway 1x1 image. The
// encoder brings up its wasm runtime lazily on first use, so a broken runtime
// is surfaced here before any folder work starts.
func checkEncoder() error {
	probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	return webp.Encode(io.Discard, probe, webp.Options{Quality: 80})
}
