package csr

import (
	"strings"
)

// ParseSANDump recovers a SANSet from a textual rendering of the
// SubjectAltName section, as produced by print.CertificateRequest or by
// the openssl -text dump: comma-separated KEY:VALUE tokens such as
//
//	DNS:a.example.com, DNS:b.example.com, IP Address:10.0.0.1
//
// Each token is split on the first colon only and both sides are
// trimmed. Tokens without a colon, with an empty key or an empty value,
// or with a key outside the known categories are dropped silently.
func ParseSANDump(text string) SANSet {
	set := NewSANSet()
	for _, line := range strings.Split(text, "\n") {
		for _, token := range strings.Split(line, ",") {
			key, value, found := strings.Cut(token, ":")
			if !found {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if key == "" || value == "" {
				continue
			}
			if _, ok := set[key]; ok {
				set[key] = append(set[key], value)
			}
		}
	}
	return set
}
