package rebind

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/version"
)

// RunInfo carries the run-level parameters recorded in a report.
type RunInfo struct {
	Organization string
	Tag          string
	Target       meraki.Template
	AutoBind     bool
	Names        TemplateNames
	StartedAt    time.Time
	Duration     time.Duration
}

// Report is the YAML run report written when --report is requested.
type Report struct {
	Tool          string          `yaml:"tool"`
	Version       string          `yaml:"version"`
	StartedAt     time.Time       `yaml:"started_at"`
	Duration      string          `yaml:"duration"`
	Organization  string          `yaml:"organization"`
	Tag           string          `yaml:"tag"`
	Template      string          `yaml:"template"`
	TemplateID    string          `yaml:"template_id"`
	AutoBind      bool            `yaml:"auto_bind"`
	Networks      []NetworkReport `yaml:"networks"`
	VLANsRestored int             `yaml:"vlans_restored"`
}

// NetworkReport is the per-network section of a run report.
type NetworkReport struct {
	ID               string       `yaml:"id"`
	Name             string       `yaml:"name"`
	PreviousTemplate string       `yaml:"previous_template,omitempty"`
	RestoredVLANs    []VLANReport `yaml:"restored_vlans,omitempty"`
	Duration         string       `yaml:"duration"`
}

// VLANReport records one restored VLAN in a run report.
type VLANReport struct {
	ID          int    `yaml:"id"`
	Subnet      string `yaml:"subnet"`
	ApplianceIP string `yaml:"appliance_ip"`
}

// NewReport assembles a run report from per-network results.
func NewReport(run RunInfo, results []*Result) *Report {
	rep := &Report{
		Tool:         "netbind",
		Version:      version.Version,
		StartedAt:    run.StartedAt,
		Duration:     run.Duration.Round(time.Second).String(),
		Organization: run.Organization,
		Tag:          run.Tag,
		Template:     run.Target.Name,
		TemplateID:   run.Target.ID,
		AutoBind:     run.AutoBind,
	}

	for _, res := range results {
		nr := NetworkReport{
			ID:       res.Network.ID,
			Name:     res.Network.Name,
			Duration: res.Duration.Round(time.Second).String(),
		}
		if res.UnboundFrom != "" {
			nr.PreviousTemplate = run.Names.Name(res.UnboundFrom)
		}
		for _, v := range res.Restored {
			nr.RestoredVLANs = append(nr.RestoredVLANs, VLANReport{
				ID:          v.ID,
				Subnet:      v.Subnet,
				ApplianceIP: v.ApplianceIP,
			})
		}
		rep.VLANsRestored += len(res.Restored)
		rep.Networks = append(rep.Networks, nr)
	}

	return rep
}

// Write serializes the report as YAML to path, creating parent directories.
func (r *Report) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
