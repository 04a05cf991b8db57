package rebind

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netops-tools/netbind/pkg/meraki"
)

func testRunInfo() RunInfo {
	return RunInfo{
		Organization: "O_1",
		Tag:          "migrate",
		Target:       meraki.Template{ID: "T_new", Name: "Branch Standard"},
		AutoBind:     true,
		Names:        TemplateNames{"T_old": "Legacy"},
		StartedAt:    time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC),
		Duration:     90 * time.Second,
	}
}

func TestNewReport(t *testing.T) {
	results := []*Result{
		{
			Network:     meraki.Network{ID: "N_1", Name: "store-west"},
			UnboundFrom: "T_old",
			Restored: []VLANRestore{
				{ID: 10, Subnet: "10.0.0.0/24", ApplianceIP: "10.0.0.1"},
				{ID: 20, Subnet: "10.0.20.0/24", ApplianceIP: "10.0.20.1"},
			},
			Duration: 3 * time.Second,
		},
		{
			Network:  meraki.Network{ID: "N_2", Name: "store-east"},
			Duration: 2 * time.Second,
		},
	}

	rep := NewReport(testRunInfo(), results)

	if rep.Template != "Branch Standard" || rep.TemplateID != "T_new" {
		t.Errorf("template = %q (%q)", rep.Template, rep.TemplateID)
	}
	if rep.Duration != "1m30s" {
		t.Errorf("Duration = %q, want 1m30s", rep.Duration)
	}
	if rep.VLANsRestored != 2 {
		t.Errorf("VLANsRestored = %d, want 2", rep.VLANsRestored)
	}
	if len(rep.Networks) != 2 {
		t.Fatalf("got %d network entries, want 2", len(rep.Networks))
	}
	if rep.Networks[0].PreviousTemplate != "Legacy" {
		t.Errorf("PreviousTemplate = %q, want Legacy (resolved name)", rep.Networks[0].PreviousTemplate)
	}
	if rep.Networks[1].PreviousTemplate != "" {
		t.Errorf("unbound network should have no previous template, got %q", rep.Networks[1].PreviousTemplate)
	}
	if len(rep.Networks[0].RestoredVLANs) != 2 {
		t.Errorf("RestoredVLANs = %+v", rep.Networks[0].RestoredVLANs)
	}
}

func TestReport_WriteRoundTrip(t *testing.T) {
	results := []*Result{
		{
			Network:     meraki.Network{ID: "N_1", Name: "store-west"},
			UnboundFrom: "T_old",
			Restored:    []VLANRestore{{ID: 10, Subnet: "10.0.0.0/24", ApplianceIP: "10.0.0.1"}},
			Duration:    time.Second,
		},
	}
	rep := NewReport(testRunInfo(), results)

	path := filepath.Join(t.TempDir(), "reports", "run.yaml")
	if err := rep.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	var got Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshaling report: %v", err)
	}

	if got.Organization != "O_1" || got.Tag != "migrate" {
		t.Errorf("org/tag = %q/%q", got.Organization, got.Tag)
	}
	if got.Tool != "netbind" {
		t.Errorf("Tool = %q, want netbind", got.Tool)
	}
	if len(got.Networks) != 1 || got.Networks[0].ID != "N_1" {
		t.Errorf("Networks = %+v", got.Networks)
	}
	if got.Networks[0].RestoredVLANs[0].Subnet != "10.0.0.0/24" {
		t.Errorf("restored subnet = %q", got.Networks[0].RestoredVLANs[0].Subnet)
	}
}
