package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/rebind"
	"github.com/netops-tools/netbind/pkg/util"
)

var networksTagFilter string

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List organization networks",
	Long: `List the organization's networks with their tags and template bindings.

Examples:
  netbind networks -k KEY -o ORG
  netbind networks -k KEY -o ORG -n store,branch   # networks with any of the tags
  netbind networks -k KEY -o ORG --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateConnectionFlags(); err != nil {
			return &usageError{cmd: cmd, err: err}
		}

		ctx := context.Background()
		client := newClient()

		networks, err := client.ListNetworks(ctx, orgID)
		if err != nil {
			return fmt.Errorf("listing networks: %w", err)
		}
		if networksTagFilter != "" {
			networks = filterByTags(networks, util.SplitCommaSeparated(networksTagFilter))
		}

		templates, err := client.ListTemplates(ctx, orgID)
		if err != nil {
			return fmt.Errorf("listing templates: %w", err)
		}
		names := rebind.NamesOf(templates)

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(networks)
		}

		if len(networks) == 0 {
			fmt.Println("No networks found")
			return nil
		}

		table := cli.NewTable("ID", "NAME", "TAGS", "TEMPLATE")
		for _, nw := range networks {
			tmpl := "-"
			if nw.Bound() {
				tmpl = names.Name(nw.ConfigTemplateID)
			}
			table.Row(nw.ID, nw.Name, strings.Join(nw.Tags, ","), tmpl)
		}
		table.Flush()
		return nil
	},
}

// filterByTags keeps networks carrying at least one of the given tags.
func filterByTags(networks []meraki.Network, tags []string) []meraki.Network {
	var matched []meraki.Network
	for _, nw := range networks {
		for _, tag := range tags {
			if nw.HasTag(tag) {
				matched = append(matched, nw)
				break
			}
		}
	}
	return matched
}

func init() {
	networksCmd.Flags().StringVarP(&networksTagFilter, "tag", "n", "", "Only networks with any of these tags (comma-separated)")
}
