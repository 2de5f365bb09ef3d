package vpn

import "testing"

func TestValidInterfaceName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "wg0", true},
		{"letters only", "home", true},
		{"full character set", "a_b=c+d.e-f", true},
		{"digits only", "0", true},
		{"uppercase", "Office", true},
		{"empty", "", false},
		{"space", "office vpn", false},
		{"leading space", " wg0", false},
		{"slash", "wg/0", false},
		{"comma", "wg,0", false},
		{"non-ascii", "café", false},
		{"tab", "wg\t0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidInterfaceName(tt.input); got != tt.valid {
				t.Errorf("ValidInterfaceName(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
