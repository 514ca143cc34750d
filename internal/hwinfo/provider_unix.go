//go:build !windows
// +build !windows

package hwinfo

import (
	"strings"

	"github.com/jaypipes/ghw"

	"github.com/sentinel/hwident/internal/wmi"
)

// NewPlatformQuerier returns the ghw-backed querier used off Windows. The
// namespace only applies to WMI and is ignored here.
func NewPlatformQuerier(namespace string) Querier {
	return &ghwQuerier{}
}

// ghwQuerier answers the five known facet targets from DMI/sysfs data so
// fingerprints work on non-Windows hosts. It keeps the same lifecycle and
// precondition behavior as the WMI session.
type ghwQuerier struct {
	active bool
}

func (g *ghwQuerier) Initialize() error {
	g.active = true
	return nil
}

func (g *ghwQuerier) Cleanup() {
	g.active = false
}

func (g *ghwQuerier) Active() bool {
	return g.active
}

func (g *ghwQuerier) QueryOne(spec wmi.QuerySpec) (string, error) {
	if !g.active {
		return "", wmi.ErrNotInitialized
	}
	values := g.lookup(spec)
	if spec.Index < 0 || spec.Index >= len(values) {
		return "", nil
	}
	return values[spec.Index], nil
}

func (g *ghwQuerier) QueryMany(spec wmi.QuerySpec) ([]string, error) {
	if !g.active {
		return nil, wmi.ErrNotInitialized
	}
	return g.lookup(spec), nil
}

// lookup maps a facet target onto its ghw source. Unknown targets and
// collection errors read as absent data, matching the WMI executor.
func (g *ghwQuerier) lookup(spec wmi.QuerySpec) []string {
	switch {
	case spec.Class == cpuIDQuery.Class && spec.Property == cpuIDQuery.Property:
		return cpuSignatures()
	case spec.Class == baseboardQuery.Class && spec.Property == baseboardQuery.Property:
		return baseboardSerials()
	case spec.Class == biosQuery.Class && spec.Property == biosQuery.Property:
		return productSerials()
	case spec.Class == diskSerialQuery.Class && spec.Property == diskSerialQuery.Property:
		return diskSerials()
	case spec.Class == macAddressQuery.Class && spec.Property == macAddressQuery.Property:
		return macAddresses()
	}
	return nil
}

// cpuSignatures builds a repeatable vendor+model signature per processor;
// DMI exposes no processor serial off Windows.
func cpuSignatures() []string {
	info, err := ghw.CPU()
	if err != nil {
		return nil
	}
	var values []string
	for _, p := range info.Processors {
		sig := strings.TrimSpace(strings.TrimSpace(p.Vendor) + " " + strings.TrimSpace(p.Model))
		values = appendValue(values, sig)
	}
	return values
}

func baseboardSerials() []string {
	info, err := ghw.Baseboard()
	if err != nil {
		return nil
	}
	return appendValue(nil, info.SerialNumber)
}

// productSerials reads the DMI product serial, which is what the BIOS
// serial resolves to on most machines.
func productSerials() []string {
	info, err := ghw.Product()
	if err != nil {
		return nil
	}
	return appendValue(nil, info.SerialNumber)
}

func diskSerials() []string {
	info, err := ghw.Block()
	if err != nil {
		return nil
	}
	var values []string
	for _, d := range info.Disks {
		values = appendValue(values, d.SerialNumber)
	}
	return values
}

func macAddresses() []string {
	info, err := ghw.Network()
	if err != nil {
		return nil
	}
	var values []string
	for _, nic := range info.NICs {
		values = appendValue(values, nic.MacAddress)
	}
	return values
}

// appendValue filters the empty and "unknown" placeholders ghw reports for
// missing DMI fields.
func appendValue(values []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "unknown") {
		return values
	}
	return append(values, v)
}
