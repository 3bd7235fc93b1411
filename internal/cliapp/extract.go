package cliapp

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sammyer/boilerpy"
)

var (
	extractExtractorName string
	extractOutputPath    string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file|url>",
	Short: "Extract the main content of a single HTML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := extractorByName(coalesce(extractExtractorName, cfg.Extractor))
		if err != nil {
			return err
		}

		content, err := extractOne(extractor, args[0])
		if err != nil && !errors.Is(err, boilerpy.ErrEmptyDocument) {
			return err
		}
		if errors.Is(err, boilerpy.ErrEmptyDocument) {
			logger.Warn("document had no extractable content", "source", args[0])
		}

		if extractOutputPath == "" {
			_, err := fmt.Fprint(os.Stdout, content)
			return err
		}
		return os.WriteFile(extractOutputPath, []byte(content), 0o644)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractExtractorName, "extractor", "", "extractor preset (article, default, largest, canola, keepeverything, numwordsrules, articlesentences)")
	extractCmd.Flags().StringVarP(&extractOutputPath, "output", "o", "", "write content here instead of stdout")
}

// extractOne fetches or reads source, then runs extractor over it.
func extractOne(extractor *boilerpy.Extractor, source string) (string, error) {
	opts := []boilerpy.BlockBuilderOption{boilerpy.WithLogger(logger)}

	if isURL(source) {
		resp, err := http.Get(source)
		if err != nil {
			return "", fmt.Errorf("fetching %s: %w", source, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("fetching %s: status %s", source, resp.Status)
		}
		return extractor.GetContentFromReader(resp.Body, opts...)
	}

	f, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", source, err)
	}
	defer f.Close()

	return extractor.GetContentFromReader(f, opts...)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
