package hwinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// combineFacets joins the facet values with "|" in fixed order. The CPU,
// motherboard, and BIOS segments are always present, even when empty; the
// disk and MAC segments carry the first value of their sequence and are
// omitted entirely when the sequence is empty.
func combineFacets(cpuID, motherboardSerial, biosSerial string, diskSerials, macAddresses []string) string {
	parts := []string{cpuID, motherboardSerial, biosSerial}
	if len(diskSerials) > 0 {
		parts = append(parts, diskSerials[0])
	}
	if len(macAddresses) > 0 {
		parts = append(parts, macAddresses[0])
	}
	return strings.Join(parts, "|")
}

// hashFingerprint reduces the combined facet string to a lowercase hex
// SHA-256 digest, stable across processes and platforms.
func hashFingerprint(combined string) string {
	sum := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(sum[:])
}
