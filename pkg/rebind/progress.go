package rebind

import (
	"fmt"
	"io"
	"os"

	"github.com/netops-tools/netbind/pkg/cli"
	"github.com/netops-tools/netbind/pkg/meraki"
)

// Progress receives step callbacks while networks are rebound.
type Progress interface {
	Unbinding(nw meraki.Network, fromTemplate string)
	Binding(nw meraki.Network, toTemplate string)
	Restoring(nw meraki.Network, vlanID int, subnet, applianceIP string)
}

// NopProgress discards all progress callbacks.
type NopProgress struct{}

func (NopProgress) Unbinding(meraki.Network, string)              {}
func (NopProgress) Binding(meraki.Network, string)                {}
func (NopProgress) Restoring(meraki.Network, int, string, string) {}

// ConsoleProgress prints one line per rebind step. Output is append-only
// (no cursor rewriting), so it is safe for pipes, CI, and scrollback.
type ConsoleProgress struct {
	W       io.Writer
	Verbose bool
}

// NewConsoleProgress creates a ConsoleProgress writing to stdout.
func NewConsoleProgress(verbose bool) *ConsoleProgress {
	return &ConsoleProgress{W: os.Stdout, Verbose: verbose}
}

func (p *ConsoleProgress) Unbinding(nw meraki.Network, from string) {
	fmt.Fprintf(p.W, "Unbinding network %s from current template %s\n", nw.Name, from)
}

func (p *ConsoleProgress) Binding(nw meraki.Network, to string) {
	fmt.Fprintf(p.W, "Binding network %s to target template %s\n", nw.Name, to)
}

// Restoring is only shown in verbose mode; restores are routine and the
// run report carries the full list.
func (p *ConsoleProgress) Restoring(nw meraki.Network, vlanID int, subnet, applianceIP string) {
	if !p.Verbose {
		return
	}
	detail := fmt.Sprintf("restoring VLAN %d: %s (%s)", vlanID, subnet, applianceIP)
	fmt.Fprintf(p.W, "  %s\n", cli.Dim(detail))
}
