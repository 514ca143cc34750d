//go:build !windows
// +build !windows

package hwinfo

import (
	"strings"
	"testing"
)

// machineGUID is best-effort context for GetAll: it either yields a usable
// identifier or an error, never a success with an empty or untrimmed value.
func TestMachineGUIDBestEffort(t *testing.T) {
	guid, err := machineGUID()
	if err != nil {
		t.Skipf("no machine identifier on this host: %v", err)
	}
	if guid == "" {
		t.Error("machineGUID returned nil error with empty value")
	}
	if guid != strings.TrimSpace(guid) {
		t.Errorf("machineGUID value %q not trimmed", guid)
	}
}
