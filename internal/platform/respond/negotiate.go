package respond

import (
	"strings"

	"github.com/danielgtaylor/huma/v2/negotiation"
)

var problemFormats = []string{
	"application/problem+json",
	"application/json",
	"application/problem+cbor",
	"application/cbor",
}

// prefersCBOR reports whether the highest-ranked acceptable format is CBOR.
// Wildcards and unknown types resolve to JSON.
func prefersCBOR(accept string) bool {
	if accept == "" {
		return false
	}
	return strings.HasSuffix(negotiation.SelectQValueFast(accept, problemFormats), "cbor")
}
