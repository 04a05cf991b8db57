package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/util"
)

var vlansCmd = &cobra.Command{
	Use:   "vlans <network-id>",
	Short: "List a network's VLANs",
	Long: `List a network's VLANs with their subnets and appliance IPs.

Examples:
  netbind vlans N_1234 -k KEY
  netbind vlans N_1234 -k KEY --json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return &usageError{cmd: cmd, err: fmt.Errorf("expected exactly one network ID argument")}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if apiKey == "" {
			return &usageError{cmd: cmd, err: util.NewValidationError("API key required: use -k <api-key>")}
		}

		ctx := context.Background()
		vlans, err := newClient().ListVLANs(ctx, args[0])
		if err != nil {
			return fmt.Errorf("listing VLANs: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(vlans)
		}

		if len(vlans) == 0 {
			fmt.Println("No VLANs found")
			return nil
		}

		table := cli.NewTable("ID", "NAME", "SUBNET", "APPLIANCE IP")
		for _, v := range vlans {
			table.Row(strconv.Itoa(v.ID), v.Name, v.Subnet, v.ApplianceIP)
		}
		table.Flush()
		return nil
	},
}
