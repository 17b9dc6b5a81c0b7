package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glidetui/glide/internal/config"
	"github.com/glidetui/glide/internal/logger"
	"github.com/glidetui/glide/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive carousel gallery",
		Long:  `Launch the interactive TUI gallery cycling through the configured carousel demos.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags, log)
		},
	}

	return cmd
}

func runGallery(flags *rootFlags, log *logger.Logger) error {
	if flags.verbose {
		verbose, err := logger.New(logger.Options{
			Level:  "debug",
			Pretty: term.IsTerminal(int(os.Stderr.Fd())),
		})
		if err == nil {
			log = verbose
		}
	}

	gal, err := loadGallery(flags.configPath)
	if err != nil {
		log.Error(err, "gallery configuration rejected")
		return err
	}

	log.WithFields(map[string]any{"demos": len(gal.Demos)}).Info("launching gallery")

	m, err := gallery.New(gal, log)
	if err != nil {
		log.Error(err, "gallery construction failed")
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	log.Info("gallery closed")
	return nil
}

func loadGallery(path string) (*config.Gallery, error) {
	if path == "" {
		return config.DefaultGallery(), nil
	}
	return config.ParseGallery(path)
}
