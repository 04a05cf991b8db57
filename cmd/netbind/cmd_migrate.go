package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/netops-tools/netbind/pkg/audit"
	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/rebind"
	"github.com/netops-tools/netbind/pkg/util"
)

// runMigrate is the root command: find the tagged networks, confirm with
// the operator, then rebind each one to the target template. The first
// failure terminates the run; earlier networks stay migrated.
func runMigrate(cmd *cobra.Command, args []string) error {
	if err := validateMigrateFlags(); err != nil {
		return &usageError{cmd: cmd, err: err}
	}
	autoBind, err := parseAutoBind(autoBindFlag)
	if err != nil {
		return &usageError{cmd: cmd, err: err}
	}

	ctx := context.Background()
	client := newClient()
	start := time.Now()
	util.Debugf("rebind run: org=%s tag=%q template=%q auto_bind=%t", orgID, networkTag, templateName, autoBind)

	networks, err := client.ListNetworks(ctx, orgID)
	if err != nil {
		return fmt.Errorf("listing networks: %w", err)
	}
	matching := rebind.SelectNetworks(networks, networkTag)

	templates, err := client.ListTemplates(ctx, orgID)
	if err != nil {
		return fmt.Errorf("listing templates: %w", err)
	}
	target, err := rebind.ResolveTemplate(templates, templateName)
	if err != nil {
		return err
	}
	names := rebind.NamesOf(templates)

	printSummary(rebind.Summarize(matching), templates)
	if len(matching) == 0 {
		return nil
	}

	if !assumeYes {
		if !stdinIsTerminal() {
			return fmt.Errorf("stdin is not a terminal: use -y to skip the confirmation prompt")
		}
		prompt := fmt.Sprintf("Continue to update by binding all %d networks to the %s template? (Y/N) ", len(matching), target.Name)
		if !confirm(prompt) {
			fmt.Println(yellow("Aborted."))
			return nil
		}
	}

	rb := &rebind.Rebinder{
		API:      client,
		Target:   target,
		AutoBind: autoBind,
		Names:    names,
		Progress: rebind.NewConsoleProgress(verbose),
	}

	runUser := currentUser()
	results := make([]*rebind.Result, 0, len(matching))
	restored := 0
	for _, nw := range matching {
		netStart := time.Now()
		event := audit.NewEvent(runUser, nw.ID, "network.rebind").
			WithOrganization(orgID).
			WithNetworkName(nw.Name).
			WithTemplates(names.Name(nw.ConfigTemplateID), target.Name)

		res, err := rb.RebindNetwork(ctx, nw)
		if err != nil {
			audit.Log(event.WithError(err).WithDuration(time.Since(netStart)))
			return fmt.Errorf("rebinding network %s: %w", nw.Name, err)
		}

		ids := make([]int, 0, len(res.Restored))
		for _, v := range res.Restored {
			ids = append(ids, v.ID)
		}
		audit.Log(event.WithRestoredVLANs(ids).WithSuccess().WithDuration(res.Duration))

		restored += len(res.Restored)
		results = append(results, res)
	}

	fmt.Println()
	fmt.Println(green(fmt.Sprintf("Rebound %d networks, restored %d VLANs in %s.",
		len(results), restored, cli.FormatDuration(time.Since(start)))))

	if reportPath != "" {
		run := rebind.RunInfo{
			Organization: orgID,
			Tag:          networkTag,
			Target:       target,
			AutoBind:     autoBind,
			Names:        names,
			StartedAt:    start,
			Duration:     time.Since(start),
		}
		if err := rebind.NewReport(run, results).Write(reportPath); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	return nil
}

// printSummary reports the matching networks' current bindings, per
// template in listing order. Unbound plus per-template counts always
// covers every matching network.
func printSummary(s rebind.Summary, templates []meraki.Template) {
	fmt.Printf("Found a grand total of %d networks with the tag %s:\n", s.Total, networkTag)
	if s.Unbound > 0 {
		fmt.Printf("%d networks are currently unbound, not bound to any template\n", s.Unbound)
	}

	known := make(map[string]bool, len(templates))
	for _, t := range templates {
		known[t.ID] = true
		if count := s.ByTemplate[t.ID]; count > 0 {
			fmt.Printf("%d networks are currently bound to template %s\n", count, t.Name)
		}
	}

	// Bindings to templates the organization no longer lists still count;
	// print those by id.
	var unknown []string
	for id := range s.ByTemplate {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		fmt.Printf("%d networks are currently bound to template %s\n", s.ByTemplate[id], id)
	}
}
