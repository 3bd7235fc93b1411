package cliapp

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchExtractorName string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-extract a file every time it changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := extractorByName(coalesce(watchExtractorName, cfg.Extractor))
		if err != nil {
			return err
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		dir := args[0]
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.Info("watching directory for changes", "dir", dir)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !isHTMLFile(event.Name) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := extractToFile(extractor, event.Name); err != nil {
					logger.Warn("watch extraction failed", "path", event.Name, "error", err)
					continue
				}
				logger.Info("re-extracted", "path", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchExtractorName, "extractor", "", "extractor preset")
}

func isHTMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
