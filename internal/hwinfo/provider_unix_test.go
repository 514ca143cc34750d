//go:build !windows
// +build !windows

package hwinfo

import (
	"errors"
	"testing"

	"github.com/sentinel/hwident/internal/wmi"
)

func TestGhwQuerierLifecycle(t *testing.T) {
	q := NewPlatformQuerier("")

	if q.Active() {
		t.Error("querier active before Initialize")
	}
	if _, err := q.QueryOne(cpuIDQuery); !errors.Is(err, wmi.ErrNotInitialized) {
		t.Errorf("QueryOne before Initialize: err = %v, want ErrNotInitialized", err)
	}
	if _, err := q.QueryMany(macAddressQuery); !errors.Is(err, wmi.ErrNotInitialized) {
		t.Errorf("QueryMany before Initialize: err = %v, want ErrNotInitialized", err)
	}

	if err := q.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !q.Active() {
		t.Error("querier not active after Initialize")
	}
	if err := q.Initialize(); err != nil {
		t.Errorf("second Initialize: %v", err)
	}

	q.Cleanup()
	if q.Active() {
		t.Error("querier active after Cleanup")
	}
	q.Cleanup()
}

// Targets outside the facet table read as absent data.
func TestGhwQuerierUnknownTarget(t *testing.T) {
	q := NewPlatformQuerier("")
	if err := q.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer q.Cleanup()

	spec := wmi.QuerySpec{Class: "Win32_VideoController", Property: "Name"}
	v, err := q.QueryOne(spec)
	if err != nil {
		t.Fatalf("QueryOne unknown target: %v", err)
	}
	if v != "" {
		t.Errorf("QueryOne unknown target = %q, want empty", v)
	}

	vs, err := q.QueryMany(spec)
	if err != nil {
		t.Fatalf("QueryMany unknown target: %v", err)
	}
	if len(vs) != 0 {
		t.Errorf("QueryMany unknown target = %v, want empty", vs)
	}
}

func TestAppendValueFiltersPlaceholders(t *testing.T) {
	var values []string
	values = appendValue(values, "ABC")
	values = appendValue(values, "")
	values = appendValue(values, "  ")
	values = appendValue(values, "unknown")
	values = appendValue(values, "Unknown")
	values = appendValue(values, "DEF")

	if len(values) != 2 || values[0] != "ABC" || values[1] != "DEF" {
		t.Errorf("appendValue result = %v, want [ABC DEF]", values)
	}
}
