package meraki

import (
	"context"
	"fmt"
	"net/http"
)

// VLAN is an appliance VLAN within a network. Binding a network to a
// template regenerates its VLANs, which keep their ids but may come back
// with template-derived subnet and appliance IP values.
type VLAN struct {
	ID          int    `json:"id"`
	NetworkID   string `json:"networkId,omitempty"`
	Name        string `json:"name,omitempty"`
	Subnet      string `json:"subnet"`
	ApplianceIP string `json:"applianceIp"`
}

// ListVLANs returns the network's appliance VLANs.
func (c *Client) ListVLANs(ctx context.Context, networkID string) ([]VLAN, error) {
	var vlans []VLAN
	path := fmt.Sprintf("/networks/%s/vlans", networkID)
	if err := c.do(ctx, http.MethodGet, path, nil, &vlans); err != nil {
		return nil, err
	}
	return vlans, nil
}

// UpdateVLAN sets the subnet and appliance IP of a single VLAN.
func (c *Client) UpdateVLAN(ctx context.Context, networkID string, vlanID int, subnet, applianceIP string) error {
	body := map[string]string{
		"subnet":      subnet,
		"applianceIp": applianceIP,
	}
	path := fmt.Sprintf("/networks/%s/vlans/%d", networkID, vlanID)
	return c.do(ctx, http.MethodPut, path, body, nil)
}
