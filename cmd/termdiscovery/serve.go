package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/termdiscovery/registry"
	"github.com/jonwraymond/termdiscovery/translate"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		httpAddr    string
		useHTTP     bool
		noTranslate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the glossary tools over MCP",
		Long: `Serve the glossary tools over MCP, on stdio by default or over
streamable HTTP with --http.

The translate tool is offered when a model API key is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.serverRegistry(noTranslate)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if useHTTP || cmd.Flags().Changed("addr") {
				addr := a.cfg.Server.HTTPAddr
				if cmd.Flags().Changed("addr") {
					addr = httpAddr
				}
				return reg.ListenAndServe(ctx, addr)
			}
			err = reg.ServeStdio(ctx)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&useHTTP, "http", false, "Serve streamable HTTP instead of stdio")
	cmd.Flags().StringVar(&httpAddr, "addr", "", "HTTP listen address (defaults to server.http_addr)")
	cmd.Flags().BoolVar(&noTranslate, "no-translate", false, "Do not offer the translate tool")
	return cmd
}

func (a *app) serverRegistry(noTranslate bool) (*registry.Registry, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}

	var translator *translate.Translator
	if !noTranslate && (a.modelFactory != nil || a.cfg.APIKey() != "") {
		translator = a.translator()
	}

	rel := a.cfg.Relevance
	return registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{
			Name:    a.cfg.Server.Name,
			Version: a.cfg.Server.Version,
		},
		Store:             store,
		Scorer:            a.scorer(),
		Translator:        translator,
		Threshold:         &rel.Threshold,
		FallbackThreshold: &rel.FallbackThreshold,
		Limit:             rel.Limit,
		Logger:            a.logger,
	})
}
