// Package hwinfo aggregates stable hardware identifiers into a machine
// fingerprint for binding and licensing checks.
package hwinfo

import (
	"fmt"

	"github.com/sentinel/hwident/internal/wmi"
)

// Facet query targets in the CIMv2 schema.
var (
	cpuIDQuery      = wmi.QuerySpec{Class: "Win32_Processor", Property: "ProcessorId"}
	baseboardQuery  = wmi.QuerySpec{Class: "Win32_BaseBoard", Property: "SerialNumber"}
	biosQuery       = wmi.QuerySpec{Class: "Win32_BIOS", Property: "SerialNumber"}
	diskSerialQuery = wmi.QuerySpec{Class: "Win32_PhysicalMedia", Property: "SerialNumber"}
	macAddressQuery = wmi.QuerySpec{Class: "Win32_NetworkAdapter", Property: "MACAddress"}
)

// Querier executes structured hardware queries against a live provider
// session. *wmi.Session satisfies it on Windows; NewPlatformQuerier picks
// the right implementation for the running OS.
type Querier interface {
	Initialize() error
	Cleanup()
	Active() bool
	QueryOne(wmi.QuerySpec) (string, error)
	QueryMany(wmi.QuerySpec) ([]string, error)
}

// HardwareInfo is the full identity record for one machine.
type HardwareInfo struct {
	CPUID             string   `json:"cpu_id"`
	MotherboardSerial string   `json:"motherboard_serial"`
	BiosSerial        string   `json:"bios_serial"`
	Fingerprint       string   `json:"fingerprint"`
	DiskSerials       []string `json:"disk_serials"`
	MACAddresses      []string `json:"mac_addresses"`
	MachineGUID       string   `json:"machine_guid,omitempty"`
}

// Identifier reads hardware facets through a querier and derives the
// combined fingerprint. Nothing is cached: every accessor re-executes its
// query, so values follow the live system.
type Identifier struct {
	q Querier
}

// New creates an identifier over an already-constructed querier. The caller
// keeps ownership of the querier's lifecycle.
func New(q Querier) *Identifier {
	return &Identifier{q: q}
}

// GetCPUID returns the processor id of the first CPU.
func (id *Identifier) GetCPUID() (string, error) {
	v, err := id.q.QueryOne(cpuIDQuery)
	if err != nil {
		return "", fmt.Errorf("get cpu id: %w", err)
	}
	return v, nil
}

// GetMotherboardSerial returns the baseboard serial number.
func (id *Identifier) GetMotherboardSerial() (string, error) {
	v, err := id.q.QueryOne(baseboardQuery)
	if err != nil {
		return "", fmt.Errorf("get motherboard serial: %w", err)
	}
	return v, nil
}

// GetBiosSerial returns the BIOS serial number.
func (id *Identifier) GetBiosSerial() (string, error) {
	v, err := id.q.QueryOne(biosQuery)
	if err != nil {
		return "", fmt.Errorf("get bios serial: %w", err)
	}
	return v, nil
}

// GetDiskSerials returns the serial numbers of all physical media, in
// enumeration order, empty entries dropped.
func (id *Identifier) GetDiskSerials() ([]string, error) {
	v, err := id.q.QueryMany(diskSerialQuery)
	if err != nil {
		return nil, fmt.Errorf("get disk serials: %w", err)
	}
	return v, nil
}

// GetMACAddresses returns the MAC addresses of all network adapters, in
// enumeration order, empty entries dropped.
func (id *Identifier) GetMACAddresses() ([]string, error) {
	v, err := id.q.QueryMany(macAddressQuery)
	if err != nil {
		return nil, fmt.Errorf("get mac addresses: %w", err)
	}
	return v, nil
}

// GetFingerprint queries all five facets and reduces them to the combined
// digest. Facets are always queried and joined in the same fixed order, so
// the digest is reproducible for unchanged hardware.
func (id *Identifier) GetFingerprint() (string, error) {
	cpuID, err := id.GetCPUID()
	if err != nil {
		return "", fmt.Errorf("get fingerprint: %w", err)
	}
	motherboard, err := id.GetMotherboardSerial()
	if err != nil {
		return "", fmt.Errorf("get fingerprint: %w", err)
	}
	bios, err := id.GetBiosSerial()
	if err != nil {
		return "", fmt.Errorf("get fingerprint: %w", err)
	}
	disks, err := id.GetDiskSerials()
	if err != nil {
		return "", fmt.Errorf("get fingerprint: %w", err)
	}
	macs, err := id.GetMACAddresses()
	if err != nil {
		return "", fmt.Errorf("get fingerprint: %w", err)
	}
	return hashFingerprint(combineFacets(cpuID, motherboard, bios, disks, macs)), nil
}

// GetAll collects every facet and the fingerprint in one call. The machine
// GUID is best-effort extra context and never fails the collection.
func (id *Identifier) GetAll() (*HardwareInfo, error) {
	cpuID, err := id.GetCPUID()
	if err != nil {
		return nil, err
	}
	motherboard, err := id.GetMotherboardSerial()
	if err != nil {
		return nil, err
	}
	bios, err := id.GetBiosSerial()
	if err != nil {
		return nil, err
	}
	disks, err := id.GetDiskSerials()
	if err != nil {
		return nil, err
	}
	macs, err := id.GetMACAddresses()
	if err != nil {
		return nil, err
	}

	guid, _ := machineGUID()

	return &HardwareInfo{
		CPUID:             cpuID,
		MotherboardSerial: motherboard,
		BiosSerial:        bios,
		Fingerprint:       hashFingerprint(combineFacets(cpuID, motherboard, bios, disks, macs)),
		DiskSerials:       disks,
		MACAddresses:      macs,
		MachineGUID:       guid,
	}, nil
}
