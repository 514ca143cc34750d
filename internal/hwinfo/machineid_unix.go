//go:build !windows
// +build !windows

package hwinfo

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// machineGUID returns the OS machine identifier on non-Windows systems.
func machineGUID() (string, error) {
	if runtime.GOOS == "darwin" {
		return darwinPlatformUUID()
	}
	return linuxMachineID()
}

// linuxMachineID reads /etc/machine-id, falling back to the dbus copy.
func linuxMachineID() (string, error) {
	for _, path := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data)), nil
		}
	}
	return "", fmt.Errorf("no machine-id file readable")
}

// darwinPlatformUUID retrieves the IOPlatformUUID using ioreg.
func darwinPlatformUUID() (string, error) {
	output, err := exec.Command("ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
	if err != nil {
		return "", fmt.Errorf("run ioreg: %w", err)
	}

	// Line format: "IOPlatformUUID" = "XXXXXXXX-XXXX-..."
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		if _, value, found := strings.Cut(line, "="); found {
			return strings.Trim(strings.TrimSpace(value), "\""), nil
		}
	}

	return "", fmt.Errorf("ioreg output carries no IOPlatformUUID")
}
