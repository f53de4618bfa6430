package certutil

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/secinfra/csrkit/x/slices"
)

var csrBlockTypes = []string{"CERTIFICATE REQUEST", "NEW CERTIFICATE REQUEST"}

// LoadRequestFromPEM returns CertificateRequest loaded from the file
func LoadRequestFromPEM(csrFile string) (*x509.CertificateRequest, error) {
	b, err := os.ReadFile(csrFile)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	csrv, err := ParseRequestFromPEM(b)
	if err != nil {
		return nil, err
	}

	return csrv, nil
}

// ParseRequestFromPEM returns CertificateRequest parsed from PEM.
// The first CERTIFICATE REQUEST or NEW CERTIFICATE REQUEST block is used,
// any other block types are skipped.
func ParseRequestFromPEM(csrPEM []byte) (*x509.CertificateRequest, error) {
	var block *pem.Block
	// trim white space around PEM
	rest := []byte(strings.TrimSpace(string(csrPEM)))
	for len(rest) != 0 {
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, errors.Errorf("unable to parse PEM")
		}
		if slices.ContainsString(csrBlockTypes, block.Type) {
			csrv, err := x509.ParseCertificateRequest(block.Bytes)
			if err != nil {
				return nil, errors.WithMessage(err, "unable to parse certificate request")
			}
			return csrv, nil
		}
		rest = []byte(strings.TrimSpace(string(rest)))
	}
	return nil, errors.Errorf("no certificate request in PEM")
}

// EncodeRequestToPEM returns PEM encoded CSR
func EncodeRequestToPEM(csrv *x509.CertificateRequest) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE REQUEST",
		Bytes: csrv.Raw,
	})
}
