package errors

import (
	"strings"
	"testing"
)

func TestValidateEntityID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "a", false},
		{"valid with dash", "a-b", false},
		{"valid with hash suffix", "a-b#1", false},
		{"valid with space", "node 1", false},
		{"valid unicode", "knoten_ä", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 300), true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"brace", "a{b", true},
		{"bracket", "a]b", true},
		{"paren", "a(b", true},
		{"comma", "a,b", true},
		{"backslash", "a\\b", true},
		{"percent", "50%", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntityID("node", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntityID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeFormat) {
				t.Errorf("ValidateEntityID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeFormat)
			}
		})
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"node size", "node_size", false},
		{"alias", "v_color", false},
		{"general", "canvas", false},
		{"digits", "edge_r2", false},

		{"empty", "", true},
		{"leading digit", "1size", true},
		{"leading underscore", "_size", true},
		{"dash", "node-size", true},
		{"space", "node size", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyword(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeyword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"tex", "network.tex", false},
		{"nested", "out/network.csv", false},

		{"empty", "", true},
		{"control", "net\x01.tex", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
