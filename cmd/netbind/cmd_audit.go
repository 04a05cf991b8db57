package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/audit"
	"github.com/netops-tools/netbind/pkg/cli"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "View audit logs",
	Long: `View audit logs of template rebind operations.

Every rebind is logged with:
  - Timestamp
  - User who ran the migration
  - Network affected and its template transition
  - VLANs restored after binding
  - Success/failure status

Examples:
  netbind audit list --network store-west
  netbind audit list --last 24h
  netbind audit list --user alice`,
}

var (
	auditNetwork  string
	auditUser     string
	auditLast     string
	auditLimit    int
	auditFailures bool
)

var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit events",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := audit.Filter{
			Network:     auditNetwork,
			User:        auditUser,
			Limit:       auditLimit,
			FailureOnly: auditFailures,
		}

		if auditLast != "" {
			duration, err := time.ParseDuration(auditLast)
			if err != nil {
				return &usageError{cmd: cmd, err: fmt.Errorf("invalid duration: %s", auditLast)}
			}
			filter.StartTime = time.Now().Add(-duration)
		}

		events, err := audit.Query(filter)
		if err != nil {
			return fmt.Errorf("querying audit log: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(events)
		}

		if len(events) == 0 {
			fmt.Println("No audit events found")
			return nil
		}

		table := cli.NewTable("TIMESTAMP", "USER", "NETWORK", "TEMPLATE", "VLANS", "STATUS")
		for _, event := range events {
			status := green("ok")
			if !event.Success {
				status = red("failed")
			}

			network := event.NetworkName
			if network == "" {
				network = event.Network
			}

			table.Row(
				event.Timestamp.Format("2006-01-02 15:04:05"),
				event.User,
				network,
				transition(event),
				strconv.Itoa(len(event.RestoredVLANs)),
				status,
			)
		}
		table.Flush()

		return nil
	},
}

// transition renders an event's template movement.
func transition(event *audit.Event) string {
	if event.ToTemplate == "" {
		return "-"
	}
	if event.FromTemplate == "" {
		return "-> " + event.ToTemplate
	}
	return event.FromTemplate + " -> " + event.ToTemplate
}

func init() {
	auditListCmd.Flags().StringVar(&auditNetwork, "network", "", "Filter by network ID or name")
	auditListCmd.Flags().StringVar(&auditUser, "user", "", "Filter by user")
	auditListCmd.Flags().StringVar(&auditLast, "last", "", "Show events from last duration (e.g., 24h)")
	auditListCmd.Flags().IntVar(&auditLimit, "limit", 100, "Maximum events to show")
	auditListCmd.Flags().BoolVar(&auditFailures, "failures", false, "Show only failed operations")

	auditCmd.AddCommand(auditListCmd)
}
