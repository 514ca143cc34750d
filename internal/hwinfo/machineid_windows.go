//go:build windows
// +build windows

package hwinfo

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// machineGUID reads the OS-assigned machine GUID from the registry. It is
// reported alongside the hardware facets but does not feed the fingerprint.
func machineGUID() (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\Cryptography`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open cryptography key: %w", err)
	}
	defer k.Close()

	guid, _, err := k.GetStringValue("MachineGuid")
	if err != nil {
		return "", fmt.Errorf("read MachineGuid value: %w", err)
	}

	return strings.TrimSpace(guid), nil
}
