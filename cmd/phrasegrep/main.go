// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/phrasegrep"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "phrasegrep",
		Usage: "Search a text for many phrases in parallel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "search",
				Usage:  "Search a text file for every phrase in a phrase file",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Path to the text file; its first line is treated as a title and skipped",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "phrases",
						Aliases:  []string{"p"},
						Usage:    "Path to the phrase file, one phrase per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size (0 = number of CPUs)",
					},
					&cli.BoolFlag{
						Name:  "parallel-searching",
						Usage: "Parallelize within each phrase's scan of the text",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "parallel-phrases",
						Usage: "Parallelize across the phrase list",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "positions",
						Usage: "Print match positions, not just counts",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	text, err := os.ReadFile(c.String("text"))
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	phrases, err := readPhrases(c.String("phrases"))
	if err != nil {
		return fmt.Errorf("failed to read phrase file: %w", err)
	}

	engine, err := phrasegrep.NewEngine(phrasegrep.WithWorkers(c.Int("workers")))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	results, err := engine.Search(context.Background(), string(text), phrases,
		c.Bool("parallel-searching"), c.Bool("parallel-phrases"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d of %d phrases\n", len(results), len(phrases))
	for _, result := range results {
		if c.Bool("positions") {
			fmt.Println(result)
		} else {
			fmt.Printf("%q matched %d time(s)\n", result.Phrase, result.Count())
		}
	}

	return nil
}

// readPhrases loads one phrase per line, skipping blank lines.
func readPhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var phrases []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			phrases = append(phrases, line)
		}
	}
	return phrases, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
