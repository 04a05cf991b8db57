// Package rebind implements the template rebinding workflow: select
// networks by tag, resolve the target template, and rebind each network
// to it while preserving the network's VLAN addressing.
//
// Binding a network to a configuration template regenerates the
// network's VLANs with template-derived subnets. The rebinder snapshots
// VLAN addressing before the bind and restores any subnet or appliance
// IP the bind changed, matching VLANs by id.
package rebind

import (
	"context"
	"fmt"
	"time"

	"github.com/netops-tools/netbind/pkg/meraki"
	"github.com/netops-tools/netbind/pkg/util"
)

// API is the slice of the dashboard client the rebinder depends on.
// *meraki.Client satisfies it.
type API interface {
	ListNetworks(ctx context.Context, orgID string) ([]meraki.Network, error)
	ListTemplates(ctx context.Context, orgID string) ([]meraki.Template, error)
	ListVLANs(ctx context.Context, networkID string) ([]meraki.VLAN, error)
	UpdateVLAN(ctx context.Context, networkID string, vlanID int, subnet, applianceIP string) error
	BindToTemplate(ctx context.Context, networkID, templateID string, autoBind bool) error
	UnbindFromTemplate(ctx context.Context, networkID string) error
}

// SelectNetworks returns the networks carrying the given tag, in the
// order the API returned them. Networks with a nil tag set never match.
func SelectNetworks(networks []meraki.Network, tag string) []meraki.Network {
	var matched []meraki.Network
	for _, n := range networks {
		if n.HasTag(tag) {
			matched = append(matched, n)
		}
	}
	return matched
}

// ResolveTemplate finds the template whose name exactly matches name.
// Matching is case-sensitive; the first match wins.
func ResolveTemplate(templates []meraki.Template, name string) (meraki.Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	return meraki.Template{}, &TemplateNotFoundError{Name: name}
}

// Summary partitions networks by their current template binding.
// Unbound plus the per-template counts always equals Total.
type Summary struct {
	Total      int
	Unbound    int
	ByTemplate map[string]int // template id -> bound network count
}

// Summarize tallies the current bindings of the given networks.
func Summarize(networks []meraki.Network) Summary {
	s := Summary{Total: len(networks), ByTemplate: make(map[string]int)}
	for _, n := range networks {
		if n.Bound() {
			s.ByTemplate[n.ConfigTemplateID]++
		} else {
			s.Unbound++
		}
	}
	return s
}

// TemplateNames maps template ids to display names.
type TemplateNames map[string]string

// NamesOf builds a TemplateNames index from a template list.
func NamesOf(templates []meraki.Template) TemplateNames {
	names := make(TemplateNames, len(templates))
	for _, t := range templates {
		names[t.ID] = t.Name
	}
	return names
}

// Name returns the display name for a template id, or the id itself
// when unknown.
func (n TemplateNames) Name(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return id
}

// VLANRestore records one restored VLAN and the pre-bind values written back.
type VLANRestore struct {
	ID          int
	Subnet      string
	ApplianceIP string
}

// Result is the outcome of rebinding one network.
type Result struct {
	Network     meraki.Network
	UnboundFrom string // template id the network was unbound from; "" if it was not bound
	Restored    []VLANRestore
	Duration    time.Duration
}

// Rebinder binds networks to a target template while preserving their
// VLAN addressing.
type Rebinder struct {
	API      API
	Target   meraki.Template
	AutoBind bool          // forward auto-bind-switch-profiles on bind
	Names    TemplateNames // resolves template ids in progress output; optional
	Progress Progress      // step reporting; nil disables
}

// RebindNetwork migrates one network to the target template: snapshot
// VLANs, unbind the current template if any, bind the target, then
// restore every VLAN whose subnet or appliance IP the bind changed.
// A network already bound to the target is still unbound and rebound.
func (r *Rebinder) RebindNetwork(ctx context.Context, nw meraki.Network) (*Result, error) {
	start := time.Now()

	before, err := r.API.ListVLANs(ctx, nw.ID)
	if err != nil {
		return nil, fmt.Errorf("listing VLANs for %s: %w", nw.Name, err)
	}
	util.WithNetwork(nw.Name).Debugf("snapshotted %d VLANs", len(before))

	if nw.Bound() {
		r.progress().Unbinding(nw, r.Names.Name(nw.ConfigTemplateID))
		if err := r.API.UnbindFromTemplate(ctx, nw.ID); err != nil {
			return nil, fmt.Errorf("unbinding %s: %w", nw.Name, err)
		}
	}

	r.progress().Binding(nw, r.Target.Name)
	if err := r.API.BindToTemplate(ctx, nw.ID, r.Target.ID, r.AutoBind); err != nil {
		return nil, fmt.Errorf("binding %s: %w", nw.Name, err)
	}

	after, err := r.API.ListVLANs(ctx, nw.ID)
	if err != nil {
		return nil, fmt.Errorf("listing VLANs for %s after bind: %w", nw.Name, err)
	}

	restored, err := r.restoreVLANs(ctx, nw, before, after)
	if err != nil {
		return nil, err
	}

	return &Result{
		Network:     nw,
		UnboundFrom: nw.ConfigTemplateID,
		Restored:    restored,
		Duration:    time.Since(start),
	}, nil
}

// restoreVLANs writes pre-bind subnet and appliance IP back to every
// VLAN the bind changed. Unchanged VLANs are not re-submitted.
func (r *Rebinder) restoreVLANs(ctx context.Context, nw meraki.Network, before, after []meraki.VLAN) ([]VLANRestore, error) {
	prior := make(map[int]meraki.VLAN, len(before))
	for _, v := range before {
		prior[v.ID] = v
	}

	var restored []VLANRestore
	for _, v := range after {
		want, ok := prior[v.ID]
		if !ok {
			return nil, &VLANNotFoundError{Network: nw.Name, VLAN: v.ID}
		}
		if v.Subnet == want.Subnet && v.ApplianceIP == want.ApplianceIP {
			continue
		}
		if util.IsValidIPv4CIDR(want.Subnet) && util.IsValidIPv4(want.ApplianceIP) &&
			!util.CIDRContains(want.Subnet, want.ApplianceIP) {
			util.Warnf("network %s VLAN %d: appliance IP %s is outside subnet %s",
				nw.Name, v.ID, want.ApplianceIP, want.Subnet)
		}
		r.progress().Restoring(nw, v.ID, want.Subnet, want.ApplianceIP)
		if err := r.API.UpdateVLAN(ctx, nw.ID, v.ID, want.Subnet, want.ApplianceIP); err != nil {
			return nil, fmt.Errorf("restoring VLAN %d on %s: %w", v.ID, nw.Name, err)
		}
		restored = append(restored, VLANRestore{ID: v.ID, Subnet: want.Subnet, ApplianceIP: want.ApplianceIP})
	}
	return restored, nil
}

func (r *Rebinder) progress() Progress {
	if r.Progress == nil {
		return NopProgress{}
	}
	return r.Progress
}
