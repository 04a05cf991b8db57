package rebind

import (
	"errors"
	"fmt"
)

// Sentinel errors for rebind failures
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrVLANNotFound     = errors.New("VLAN not found")
)

// TemplateNotFoundError reports a target template name with no exact
// match among the organization's templates.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no configuration template named %q", e.Name)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// VLANNotFoundError reports a post-bind VLAN with no pre-bind
// counterpart. Restoring addressing for a VLAN that did not exist
// before the bind is undefined, so the run aborts.
type VLANNotFoundError struct {
	Network string
	VLAN    int
}

func (e *VLANNotFoundError) Error() string {
	return fmt.Sprintf("VLAN %d on network %s has no pre-bind counterpart", e.VLAN, e.Network)
}

func (e *VLANNotFoundError) Unwrap() error {
	return ErrVLANNotFound
}
