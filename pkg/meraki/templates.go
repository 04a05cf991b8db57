package meraki

import (
	"context"
	"fmt"
	"net/http"
)

// Template is a reusable configuration profile networks can be bound to.
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTemplates returns the organization's configuration templates.
func (c *Client) ListTemplates(ctx context.Context, orgID string) ([]Template, error) {
	var templates []Template
	path := fmt.Sprintf("/organizations/%s/configTemplates", orgID)
	if err := c.do(ctx, http.MethodGet, path, nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}
