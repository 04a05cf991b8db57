package main

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/util"
)

// usageError marks an error caused by bad command-line input. main prints
// usage and exits 2 for these, keeping runtime failures (exit 1) distinct.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// newClient builds a dashboard client from the connection flags.
func newClient() *meraki.Client {
	c := meraki.NewClient(apiKey)
	if baseURL != "" {
		c.BaseURL = baseURL
	}
	return c
}

// validateMigrateFlags checks the flags the migration requires,
// accumulating every missing one into a single message.
func validateMigrateFlags() error {
	v := &util.ValidationBuilder{}
	v.Add(apiKey != "", "API key required: use -k <api-key>")
	v.Add(orgID != "", "organization ID required: use -o <org-id>")
	v.Add(templateName != "", "target template name required: use -t <template-name>")
	v.Add(networkTag != "", "network tag required: use -n <tag>")
	return v.Build()
}

// validateConnectionFlags checks the flags every listing command requires.
func validateConnectionFlags() error {
	v := &util.ValidationBuilder{}
	v.Add(apiKey != "", "API key required: use -k <api-key>")
	v.Add(orgID != "", "organization ID required: use -o <org-id>")
	return v.Build()
}

// parseAutoBind interprets the -s flag: only "true" (case-insensitive)
// enables auto-binding switches to profiles.
func parseAutoBind(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "", "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid auto-bind value %q: accepted values are true or false", s)
	}
}

// isAffirmative reports whether an operator response means yes.
func isAffirmative(answer string) bool {
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

// confirm prompts on stdout and reads one line from stdin.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return isAffirmative(answer)
}

// stdinIsTerminal reports whether stdin is an interactive terminal.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// currentUser returns the login name recorded in audit events.
func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "unknown"
}
