package wmi

import (
	"errors"
	"testing"
)

func TestQuerySpecWQL(t *testing.T) {
	tests := []struct {
		spec QuerySpec
		want string
	}{
		{QuerySpec{Class: "Win32_Processor", Property: "ProcessorId"}, "SELECT ProcessorId FROM Win32_Processor"},
		{QuerySpec{Class: "Win32_BIOS", Property: "SerialNumber", Index: 2}, "SELECT SerialNumber FROM Win32_BIOS"},
		{QuerySpec{Class: "Win32_NetworkAdapter", Property: "MACAddress"}, "SELECT MACAddress FROM Win32_NetworkAdapter"},
	}

	for _, tt := range tests {
		if got := tt.spec.wql(); got != tt.want {
			t.Errorf("wql() = %q, want %q", got, tt.want)
		}
	}
}

func TestQueryOneRequiresInitialize(t *testing.T) {
	s := NewSession("")
	v, err := s.QueryOne(QuerySpec{Class: "Win32_Processor", Property: "ProcessorId"})
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("QueryOne on uninitialized session: err = %v, want ErrNotInitialized", err)
	}
	if v != "" {
		t.Errorf("QueryOne returned %q alongside the error", v)
	}
}

func TestQueryManyRequiresInitialize(t *testing.T) {
	s := NewSession("")
	v, err := s.QueryMany(QuerySpec{Class: "Win32_PhysicalMedia", Property: "SerialNumber"})
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("QueryMany on uninitialized session: err = %v, want ErrNotInitialized", err)
	}
	if v != nil {
		t.Errorf("QueryMany returned %v alongside the error", v)
	}
}

// A negative index is out of range and reads as absent data, never a
// fault. The guard must trip before any query work happens.
func TestQueryOneNegativeIndex(t *testing.T) {
	s := &Session{state: stateActive}
	v, err := s.QueryOne(QuerySpec{Class: "Win32_Processor", Property: "ProcessorId", Index: -1})
	if err != nil {
		t.Fatalf("QueryOne with negative index: %v", err)
	}
	if v != "" {
		t.Errorf("QueryOne with negative index = %q, want empty", v)
	}
}

// The error must keep holding after Cleanup, in any order.
func TestQueryAfterCleanup(t *testing.T) {
	s := NewSession("")
	s.Cleanup()
	if _, err := s.QueryOne(QuerySpec{Class: "Win32_BIOS", Property: "SerialNumber"}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("QueryOne after Cleanup: err = %v, want ErrNotInitialized", err)
	}
}
