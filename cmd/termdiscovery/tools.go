package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolsCmd(a *app) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools a server offers",
		Long: `List the MCP tools offered by the local glossary server, or by a
running termdiscovery server with --remote.`,
		Example: `  termdiscovery tools
  termdiscovery tools --remote http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var names []string
			if remote != "" {
				client, err := dialRemote(cmd.Context(), remote)
				if err != nil {
					return err
				}
				defer client.Close()
				if names, err = client.Tools(cmd.Context()); err != nil {
					return err
				}
			} else {
				reg, err := a.serverRegistry(false)
				if err != nil {
					return err
				}
				names = reg.Tools()
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "List the tools of a termdiscovery MCP server at this URL")
	return cmd
}
