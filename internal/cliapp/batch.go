package cliapp

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/sammyer/boilerpy"
)

var batchExtractorName string

var batchCmd = &cobra.Command{
	Use:   "batch <glob...>",
	Short: "Extract every file matching the given glob patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := args
		if len(patterns) == 0 {
			patterns = cfg.Globs
		}
		if len(patterns) == 0 {
			return fmt.Errorf("no glob patterns given (pass them as arguments or set globs: in %s)", flagConfigPath)
		}

		extractor, err := extractorByName(coalesce(batchExtractorName, cfg.Extractor))
		if err != nil {
			return err
		}

		var matches []string
		seen := map[string]struct{}{}
		for _, pattern := range patterns {
			found, err := doublestar.FilepathGlob(pattern)
			if err != nil {
				return fmt.Errorf("invalid glob %q: %w", pattern, err)
			}
			for _, m := range found {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				matches = append(matches, m)
			}
		}

		for _, path := range matches {
			if err := extractToFile(extractor, path); err != nil {
				logger.Warn("batch extraction failed", "path", path, "error", err)
				continue
			}
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchExtractorName, "extractor", "", "extractor preset")
}

// extractToFile extracts content from path and atomically writes it to
// path with its extension replaced by .txt; when output_dir is configured,
// that file name is placed in the output directory instead.
func extractToFile(extractor *boilerpy.Extractor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	content, err := extractor.GetContentFromReader(f, boilerpy.WithLogger(logger))
	if err != nil && !errors.Is(err, boilerpy.ErrEmptyDocument) {
		return err
	}

	outPath := outputPathFor(path)
	if cfg.OutputDir != "" {
		outPath = cfg.OutputDir + "/" + outPath[strings.LastIndex(outPath, "/")+1:]
	}
	return writeAtomic(outPath, content)
}

func outputPathFor(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[:idx] + ".txt"
	}
	return path + ".txt"
}

func writeAtomic(path, content string) error {
	return renameio.WriteFile(path, []byte(content), 0o644)
}
