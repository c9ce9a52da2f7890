package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-check source files whenever they change",
		Long: `watch monitors a file or directory and re-runs the lexer and parser
on every change, printing diagnostics as they appear. Rapid bursts of
writes are coalesced; the delay is configurable via watch.debounce_ms.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *cfgPath)
			if err != nil {
				return err
			}
			return runWatch(cmd, args[0], cfg)
		},
	}
}

func runWatch(cmd *cobra.Command, target string, cfg config) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	// Watching a single file still registers its directory, since many
	// editors replace files on save instead of writing in place.
	watchDir := target
	only := ""
	if !info.IsDir() {
		watchDir = filepath.Dir(target)
		only = filepath.Clean(target)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(watchDir); err != nil {
		return err
	}

	color := cfg.Output.Color
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styled(accentStyle, "watching", color), target)

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	dirty := make(map[string]struct{})

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if only != "" && filepath.Clean(ev.Name) != only {
				continue
			}
			if only == "" && !watchedExtension(ev.Name, cfg.Watch.Extensions) {
				continue
			}
			dirty[ev.Name] = struct{}{}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), styled(errorStyle, "watch error:", color), err)

		case <-timer.C:
			for path := range dirty {
				delete(dirty, path)
				if _, _, err := checkFile(cmd.ErrOrStderr(), path, cfg); err != nil {
					fmt.Fprintln(out, styled(errorStyle, "✗", color), path)
					continue
				}
				fmt.Fprintln(out, styled(okStyle, "✓", color), path)
			}
		}
	}
}

func watchedExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
