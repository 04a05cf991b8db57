package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/rebind"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List configuration templates",
	Long: `List the organization's configuration templates with the number of
networks currently bound to each.

Examples:
  netbind templates -k KEY -o ORG
  netbind templates -k KEY -o ORG --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConnectionFlags(); err != nil {
			return &usageError{cmd: cmd, err: err}
		}

		ctx := context.Background()
		client := newClient()

		templates, err := client.ListTemplates(ctx, orgID)
		if err != nil {
			return fmt.Errorf("listing templates: %w", err)
		}

		networks, err := client.ListNetworks(ctx, orgID)
		if err != nil {
			return fmt.Errorf("listing networks: %w", err)
		}
		summary := rebind.Summarize(networks)

		if jsonOutput {
			type templateCount struct {
				meraki.Template
				BoundNetworks int `json:"boundNetworks"`
			}
			out := make([]templateCount, 0, len(templates))
			for _, t := range templates {
				out = append(out, templateCount{Template: t, BoundNetworks: summary.ByTemplate[t.ID]})
			}
			return json.NewEncoder(os.Stdout).Encode(out)
		}

		if len(templates) == 0 {
			fmt.Println("No templates found")
			return nil
		}

		table := cli.NewTable("ID", "NAME", "BOUND NETWORKS")
		for _, t := range templates {
			table.Row(t.ID, t.Name, strconv.Itoa(summary.ByTemplate[t.ID]))
		}
		table.Flush()
		return nil
	},
}
