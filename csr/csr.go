package csr

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/secinfra/csrkit/certutil"
)

// PEMMarker gates acceptance of the input before any PEM decoding
const PEMMarker = "BEGIN CERTIFICATE REQUEST"

// Parse decodes a PEM-encoded PKCS#10 request.
// The input must contain the BEGIN CERTIFICATE REQUEST marker,
// a cheap pre-check rather than full PEM validation.
//
// Parse is a pure function of the input: it touches no shared state and
// is safe for concurrent use. On failure nothing is constructed and the
// returned error carries the failure Kind and the stage that failed.
func Parse(rawText string) (*CertificateSigningRequest, error) {
	if !strings.Contains(rawText, PEMMarker) {
		return nil, newError(KindInvalidFormat, "", errors.Errorf("missing %s marker", PEMMarker))
	}

	csrv, err := certutil.ParseRequestFromPEM([]byte(rawText))
	if err != nil {
		return nil, newError(KindDecode, "request", err)
	}

	ki, err := certutil.NewKeyInfo(csrv.PublicKey)
	if err != nil {
		return nil, newError(KindDecode, "key", err)
	}

	sans, err := SANsFromExtensions(csrv.Extensions)
	if err != nil {
		return nil, err
	}

	return &CertificateSigningRequest{
		subject: subjectFromName(&csrv.Subject),
		key:     *ki,
		pem:     rawText,
		sans:    sans,
	}, nil
}
