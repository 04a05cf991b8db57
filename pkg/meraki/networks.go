package meraki

import (
	"context"
	"fmt"
	"net/http"
)

// Network is an organization network as returned by the dashboard API.
// Tags is nil for networks carrying no tags at all. ConfigTemplateID is
// empty for networks not bound to a configuration template.
type Network struct {
	ID               string   `json:"id"`
	OrganizationID   string   `json:"organizationId,omitempty"`
	Name             string   `json:"name"`
	Type             string   `json:"type,omitempty"`
	TimeZone         string   `json:"timeZone,omitempty"`
	Tags             []string `json:"tags"`
	ConfigTemplateID string   `json:"configTemplateId,omitempty"`
}

// HasTag reports whether the network carries the given tag.
func (n Network) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Bound reports whether the network is bound to a configuration template.
func (n Network) Bound() bool {
	return n.ConfigTemplateID != ""
}

// ListNetworks returns every network in the organization.
func (c *Client) ListNetworks(ctx context.Context, orgID string) ([]Network, error) {
	var networks []Network
	path := fmt.Sprintf("/organizations/%s/networks", orgID)
	if err := c.do(ctx, http.MethodGet, path, nil, &networks); err != nil {
		return nil, err
	}
	return networks, nil
}

// BindToTemplate binds a network to a configuration template. autoBind
// requests automatic binding of switch ports to matching switch profiles.
// The network must be unbound first; the dashboard rejects binding a
// network that already has a template.
func (c *Client) BindToTemplate(ctx context.Context, networkID, templateID string, autoBind bool) error {
	body := map[string]interface{}{
		"configTemplateId": templateID,
		"autoBind":         autoBind,
	}
	path := fmt.Sprintf("/networks/%s/bind", networkID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// UnbindFromTemplate detaches a network from its current template.
func (c *Client) UnbindFromTemplate(ctx context.Context, networkID string) error {
	path := fmt.Sprintf("/networks/%s/unbind", networkID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}
