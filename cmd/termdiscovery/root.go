package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/termdiscovery/config"
	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/relevance"
	"github.com/jonwraymond/termdiscovery/translate"
)

// app holds state shared by all commands of one invocation.
type app struct {
	configPath   string
	glossaryPath string
	logLevel     string
	jsonOut      bool

	cfg    config.Config
	logger *slog.Logger

	// modelFactory overrides the configured model; set by tests.
	modelFactory translate.Factory
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "termdiscovery",
		Short: "Glossary-aware term discovery for Vietnamese text",
		Long: `termdiscovery ranks bilingual glossary entries by relevance to a
Vietnamese sentence so that a translator can honor domain vocabulary.

Configuration is read from the TOML file given by --config or the
TERMDISCOVERY_CONFIG environment variable.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to TOML config file")
	root.PersistentFlags().StringVarP(&a.glossaryPath, "glossary", "g", "", "Path to glossary JSON file (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output results as JSON")

	root.AddCommand(
		newExtractCmd(a),
		newAddCmd(a),
		newImportCmd(a),
		newLookupCmd(a),
		newTranslateCmd(a),
		newServeCmd(a),
		newToolsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.glossaryPath != "" {
		a.cfg.Glossary.Path = a.glossaryPath
	}
	a.logger.Debug("config loaded", "glossary", a.cfg.Glossary.Path)
	return nil
}

func (a *app) openStore() (*glossary.FileStore, error) {
	store := glossary.NewFileStore(a.cfg.Glossary.Path, a.logger)
	if err := store.Load(); err != nil {
		return nil, err
	}
	a.logger.Debug("glossary loaded", "path", store.Path(), "entries", store.Len())
	return store, nil
}

func (a *app) scorer() *relevance.Scorer {
	return relevance.NewScorer(relevance.Options{
		Vectorize: a.cfg.VectorizeOptions(),
		Logger:    a.logger,
	})
}

func (a *app) modelHandle() *translate.Handle {
	factory := a.modelFactory
	if factory == nil {
		factory = translate.AnthropicFactory(a.cfg.AnthropicConfig())
	}
	return translate.NewHandle(factory, a.logger)
}

func (a *app) translator() *translate.Translator {
	threshold := a.cfg.Relevance.Threshold
	return translate.NewTranslator(a.modelHandle(), a.scorer(), translate.Options{
		Threshold: &threshold,
		Limit:     a.cfg.Relevance.Limit,
		Logger:    a.logger,
	})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
