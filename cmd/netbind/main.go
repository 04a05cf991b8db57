// Netbind - Meraki Dashboard Template Rebinder
//
// A CLI tool that finds all networks in an organization carrying a network
// tag and binds them to a target configuration template (by name):
//   - Networks currently bound to another template are unbound from it first
//   - Binding regenerates each network's VLAN addressing, so pre-bind
//     subnets and appliance IPs are snapshotted and restored afterward
//   - One confirmation up front; every rebind is audit-logged
//
// Usage:
//
//	netbind -k <api-key> -o <org-id> -t <template-name> -n <tag> [-s true|false]
//
// If the target template's name has spaces, include quotes around it.
//
// Read-only helpers:
//
//	netbind networks -k KEY -o ORG -n store,branch   # networks matching any tag
//	netbind templates -k KEY -o ORG                  # templates with bound counts
//	netbind vlans N_1234 -k KEY                      # a network's VLANs
//	netbind audit list --last 24h                    # recent rebind activity
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/audit"
	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/util"
	"github.com/netops-tools/netbind/pkg/version"
)

var (
	// Connection flags (shared by all commands)
	apiKey  string // -k, --api-key
	orgID   string // -o, --org
	baseURL string // --base-url

	// Migration flags (root command)
	templateName string // -t, --template
	networkTag   string // -n, --tag
	autoBindFlag string // -s, --auto-bind
	assumeYes    bool   // -y, --yes
	reportPath   string // --report

	// Output flags
	verbose    bool
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr)
			uerr.cmd.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "netbind",
	Short:             "Meraki Dashboard Template Rebinder",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Netbind finds all networks matching a network tag (configured on the
Organization > Overview page's table), and binds those networks to the
target template (by name). The networks' current VLAN subnets and
appliance IPs are reapplied after binding, since binding to a template
regenerates them. A network currently bound to a different template is
unbound from that template first.

  netbind -k <api-key> -o <org-id> -t <template-name> -n <tag> [-s true|false]

If the target template's name has spaces, include quotes around it.`,
	RunE: runMigrate,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		if isHelpOrVersion(cmd) {
			return nil
		}

		// Initialize audit logger; failures warn and never block a run
		auditLogger, err := audit.NewFileLogger(audit.DefaultPath(), audit.RotationConfig{
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxBackups: 10,
		})
		if err != nil {
			util.Warnf("Could not initialize audit logging: %v", err)
		} else {
			audit.SetDefaultLogger(auditLogger)
		}

		return nil
	},
}

func init() {
	// Connection flags (shared by all commands)
	rootCmd.PersistentFlags().StringVarP(&apiKey, "api-key", "k", "", "Dashboard API key")
	rootCmd.PersistentFlags().StringVarP(&orgID, "org", "o", "", "Organization ID")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Dashboard API base URL (default "+meraki.DefaultBaseURL+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Migration flags (root command only)
	rootCmd.Flags().StringVarP(&templateName, "template", "t", "", "Target template name")
	rootCmd.Flags().StringVarP(&networkTag, "tag", "n", "", "Network tag to match")
	rootCmd.Flags().StringVarP(&autoBindFlag, "auto-bind", "s", "", "Auto-bind switches to profiles: true or false")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")

	// Malformed flag syntax exits 2 with usage, like missing required flags
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	for _, cmd := range []*cobra.Command{networksCmd, templatesCmd, vlansCmd, auditListCmd} {
		addOutputFlags(cmd)
	}

	rootCmd.AddCommand(networksCmd, templatesCmd, vlansCmd, auditCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("netbind dev build (use 'make build' for version info)")
		} else {
			fmt.Printf("netbind %s\n", version.Info())
		}
	},
}

// isHelpOrVersion checks whether cmd (or any ancestor) is a help or version command.
func isHelpOrVersion(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version":
			return true
		}
	}
	return false
}

// addOutputFlags registers --json as a local flag.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
}

// Color helpers delegate to pkg/cli
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
