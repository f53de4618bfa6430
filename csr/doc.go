// Package csr parses PEM-encoded PKCS#10 Certificate Signing Requests
// and exposes their structured fields: the subject distinguished name,
// public key metadata, and Subject Alternative Names.
//
// The package only decodes and reports. It does not sign, issue, or
// verify trust; signature verification is left to the issuing authority.
package csr
