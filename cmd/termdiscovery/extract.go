package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/termdiscovery/registry"
	"github.com/jonwraymond/termdiscovery/relevance"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		threshold float64
		limit     int
		simple    bool
		remote    string
	)

	cmd := &cobra.Command{
		Use:   "extract <text>",
		Short: "List glossary terms relevant to a text",
		Long: `List glossary terms relevant to a Vietnamese text, best first.

Examples:
  termdiscovery extract "Hệ thống máy học sử dụng thuật toán"
  termdiscovery extract --limit 3 --threshold 0.5 "Mô hình cần dữ liệu"
  termdiscovery extract --simple "Chuẩn hóa dữ liệu"
  termdiscovery extract --remote http://localhost:8080 "Mạng neural"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := registry.ExtractInput{
				Text:   strings.Join(args, " "),
				Limit:  limit,
				Simple: simple,
			}
			if cmd.Flags().Changed("threshold") {
				in.Threshold = &threshold
			}

			var (
				out registry.ExtractOutput
				err error
			)
			if remote != "" {
				out, err = extractRemote(cmd.Context(), remote, in)
			} else {
				out, err = a.extractLocal(in)
			}
			if err != nil {
				return err
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printTerms(cmd.OutOrStdout(), out.Terms)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", relevance.DefaultThreshold, "Minimum relevance score (defaults to the configured threshold)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of terms (defaults to the configured limit)")
	cmd.Flags().BoolVar(&simple, "simple", false, "Use exact and lexical matching only")
	cmd.Flags().StringVar(&remote, "remote", "", "Query a termdiscovery MCP server at this URL instead of the local glossary")
	return cmd
}

func (a *app) extractLocal(in registry.ExtractInput) (registry.ExtractOutput, error) {
	store, err := a.openStore()
	if err != nil {
		return registry.ExtractOutput{}, err
	}
	if in.Threshold == nil {
		threshold := a.cfg.Relevance.Threshold
		if in.Simple {
			threshold = a.cfg.Relevance.FallbackThreshold
		}
		in.Threshold = &threshold
	}
	if in.Limit == 0 {
		in.Limit = a.cfg.Relevance.Limit
	}

	reg, err := registry.New(registry.Config{
		Store:  store,
		Scorer: a.scorer(),
		Logger: a.logger,
	})
	if err != nil {
		return registry.ExtractOutput{}, err
	}
	return reg.Extract(context.Background(), in)
}

func extractRemote(ctx context.Context, url string, in registry.ExtractInput) (registry.ExtractOutput, error) {
	client, err := dialRemote(ctx, url)
	if err != nil {
		return registry.ExtractOutput{}, err
	}
	defer client.Close()
	return client.Extract(ctx, in)
}

func dialRemote(ctx context.Context, url string) (*registry.Client, error) {
	return registry.Dial(ctx, registry.ClientConfig{URL: url})
}

func printTerms(w io.Writer, terms []registry.Term) {
	if len(terms) == 0 {
		fmt.Fprintln(w, "No relevant terms found.")
		return
	}
	for _, t := range terms {
		fmt.Fprintf(w, "%s = %s\t%.3f %s\n", t.Source, t.Target, t.Score, t.ScoreType)
	}
}
