//go:build windows
// +build windows

package hwinfo

import "github.com/sentinel/hwident/internal/wmi"

// NewPlatformQuerier returns the WMI-backed querier used on Windows.
func NewPlatformQuerier(namespace string) Querier {
	return wmi.NewSession(namespace)
}
