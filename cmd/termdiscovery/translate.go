package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTranslateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate Vietnamese text with glossary guidance",
		Long: `Translate Vietnamese text to English. The glossary terms relevant to the
text are passed to the model as preferred translations.

The model API key is read from the environment variable named by
model.api_key_env (ANTHROPIC_API_KEY by default).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			res, err := a.translator().Translate(cmd.Context(), strings.Join(args, " "), store.Entries())
			if err != nil {
				return err
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, res.Translation.Text)
			for _, alt := range res.Translation.Alternatives {
				fmt.Fprintf(w, "  - %s\n", alt)
			}
			a.logger.Info("translated", "terms", len(res.Terms), "duration", res.Duration)
			return nil
		},
	}
}
