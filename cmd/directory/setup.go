package main

import (
	"fmt"

	"github.com/gcbaptista/go-pro-directory/config"
	"github.com/gcbaptista/go-pro-directory/internal/locale"
	"github.com/gcbaptista/go-pro-directory/internal/search"
	"github.com/gcbaptista/go-pro-directory/store"
)

// app bundles what every command needs: settings, the directory and a formatter.
type app struct {
	settings  config.Settings
	records   *store.ProfessionalStore
	directory *search.Service
	formatter *locale.Formatter
}

func loadApp(path string) (*app, error) {
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	records, err := store.Open(settings.Directory.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	formatter, err := locale.NewFormatter(settings.Directory.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to configure locale: %w", err)
	}

	return &app{
		settings:  settings,
		records:   records,
		directory: search.NewService(records),
		formatter: formatter,
	}, nil
}
