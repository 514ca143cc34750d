package wmi

import (
	"testing"
	"unicode/utf16"
)

func TestUTF16ToUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ascii", "DELL-1234"},
		{"mac address", "AA:BB:CC:DD:EE:FF"},
		{"multibyte", "序列号-042"},
		{"non-bmp", "id-\U0001F4BE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := utf16.Encode([]rune(tt.input))
			if got := utf16ToUTF8(units); got != tt.input {
				t.Errorf("utf16ToUTF8 = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestBstrToUTF8(t *testing.T) {
	units := utf16.Encode([]rune("BFEBFBFF000906EA"))
	units = append(units, 0)
	if got := bstrToUTF8(&units[0]); got != "BFEBFBFF000906EA" {
		t.Errorf("bstrToUTF8 = %q, want %q", got, "BFEBFBFF000906EA")
	}
}

func TestBstrToUTF8Empty(t *testing.T) {
	if got := bstrToUTF8(nil); got != "" {
		t.Errorf("bstrToUTF8(nil) = %q, want empty", got)
	}

	zero := []uint16{0}
	if got := bstrToUTF8(&zero[0]); got != "" {
		t.Errorf("bstrToUTF8 of empty string = %q, want empty", got)
	}
}
