package cmd

import (
	"fmt"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/render"
	"golang.org/x/text/language"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLoader(cfg *config.Config) *catalog.Loader {
	return catalog.NewLoader(cfg.Catalog)
}

func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	return render.NewRenderer(render.Options{
		Title:           cfg.Title,
		Tagline:         cfg.Tagline,
		Contact:         cfg.Contact,
		SnippetCode:     cfg.Snippet.Code,
		SnippetLanguage: cfg.Snippet.Language,
	})
}

func localeOf(cfg *config.Config) language.Tag {
	return gallery.ParseLocale(cfg.Locale)
}
