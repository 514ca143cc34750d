package hwinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo describes the machine an identity record was collected on.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Architecture    string `json:"architecture"`
}

// CollectHost gathers static host information to accompany the hardware
// record.
func CollectHost() (*HostInfo, error) {
	info, err := host.Info()
	if err != nil {
		return nil, err
	}

	return &HostInfo{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
		Architecture:    runtime.GOARCH,
	}, nil
}
