package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/termdiscovery/glossary"
	"github.com/jonwraymond/termdiscovery/registry"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pairs>",
		Short: "Add terms to the glossary",
		Long: `Add terms to the glossary as comma separated vn:en or vn:en:source
pairs. Existing source terms are overwritten.

Examples:
  termdiscovery add "máy học:machine learning"
  termdiscovery add "dữ liệu:data:textbook, mô hình:model"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			entries := glossary.ParsePairs(strings.Join(args, " "))
			if len(entries) == 0 {
				return errors.New("no vn:en pairs found")
			}
			n, err := store.Add(entries...)
			if err != nil {
				return err
			}
			return a.reportAdded(cmd, n, store.Len())
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Merge a spreadsheet into the glossary",
		Long: `Merge the first sheet of an Excel workbook into the glossary. The
header row must name the columns Vietnamese and English, and may name a
Source column.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			n, err := store.ImportXLSX(args[0])
			if err != nil {
				return err
			}
			return a.reportAdded(cmd, n, store.Len())
		},
	}
}

func (a *app) reportAdded(cmd *cobra.Command, added, total int) error {
	if a.jsonOut {
		return writeJSON(cmd.OutOrStdout(), registry.AddOutput{Added: added, Total: total})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d terms (%d in glossary).\n", added, total)
	return nil
}

func newLookupCmd(a *app) *cobra.Command {
	var (
		suggestions int
		remote      string
	)

	cmd := &cobra.Command{
		Use:   "lookup <source term>",
		Short: "Look up a glossary entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := registry.LookupInput{
				Source:      strings.Join(args, " "),
				Suggestions: suggestions,
			}

			var (
				out registry.LookupOutput
				err error
			)
			if remote != "" {
				client, derr := dialRemote(cmd.Context(), remote)
				if derr != nil {
					return derr
				}
				defer client.Close()
				out, err = client.Lookup(cmd.Context(), in)
			} else {
				var reg *registry.Registry
				if reg, err = a.localRegistry(); err == nil {
					out, err = reg.Lookup(cmd.Context(), in)
				}
			}
			if err != nil {
				return err
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			if out.Found {
				fmt.Fprintln(w, out.Entry)
				if out.Entry.Origin != "" {
					fmt.Fprintf(w, "source: %s\n", out.Entry.Origin)
				}
				return nil
			}
			if len(out.Suggestions) > 0 {
				fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(out.Suggestions, ", "))
			}
			return fmt.Errorf("%w: %s", glossary.ErrNotFound, in.Source)
		},
	}

	cmd.Flags().IntVarP(&suggestions, "suggest", "s", registry.DefaultSuggestions, "Number of suggestions on a miss")
	cmd.Flags().StringVar(&remote, "remote", "", "Query a termdiscovery MCP server at this URL instead of the local glossary")
	return cmd
}

func (a *app) localRegistry() (*registry.Registry, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	return registry.New(registry.Config{Store: store, Scorer: a.scorer(), Logger: a.logger})
}
