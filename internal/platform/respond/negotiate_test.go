package respond

import "testing"

func TestPrefersCBOR(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   bool
	}{
		{"empty accept defaults to JSON", "", false},
		{"wildcard defaults to JSON", "*/*", false},
		{"explicit JSON", "application/json", false},
		{"explicit CBOR", "application/cbor", true},
		{"CBOR with quality parameter", "application/cbor;q=1.0", true},
		{"equal q-values default to JSON", "application/json, application/cbor", false},
		{"CBOR preferred with quality", "application/json;q=0.5, application/cbor", true},
		{"unsupported type defaults to JSON", "text/html", false},
		{"problem+cbor explicit", "application/problem+cbor", true},
		{"problem+json explicit", "application/problem+json", false},
		{"CBOR excluded with q=0", "application/cbor;q=0, application/json", false},
		{"JSON preferred with higher quality", "application/cbor;q=0.5, application/json;q=0.9", false},
		{"explicit CBOR over wildcard", "*/*;q=0.1, application/cbor", true},
		{"q-value wins over problem type", "application/problem+cbor;q=0.1, application/json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefersCBOR(tt.accept); got != tt.want {
				t.Fatalf("prefersCBOR(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}
