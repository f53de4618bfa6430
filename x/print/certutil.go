// Package print provides human-readable output of certificate requests
package print

import (
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/secinfra/csrkit/certutil"
	"github.com/secinfra/csrkit/oid"
	"github.com/secinfra/csrkit/x/ctl"
)

// JSON prints value to out
func JSON(w io.Writer, value interface{}) {
	_ = ctl.WriteJSON(w, value)
}

// CertificateRequest prints the parsed CSR in a human readable format
func CertificateRequest(w io.Writer, csrv *x509.CertificateRequest) {
	fmt.Fprintf(w, "Subject: %s\n", csrv.Subject.String())
	fmt.Fprintf(w, "Signature Algorithm: %s\n", csrv.SignatureAlgorithm)

	if ki, err := certutil.NewKeyInfo(csrv.PublicKey); err == nil {
		fmt.Fprintf(w, "Public Key Algorithm: %s %d\n", ki.Algorithm, ki.KeySize)
	}

	if san := SubjectAltNames(csrv); san != "" {
		fmt.Fprintf(w, "X509v3 Subject Alternative Name:\n")
		fmt.Fprintf(w, "    %s\n", san)
	}

	for _, ext := range csrv.Extensions {
		if ext.Id.Equal(oid.ExtensionSubjectAltName) {
			continue
		}
		name := oid.DisplayName[ext.Id.String()]
		if name == "" {
			name = ext.Id.String()
		}
		if ext.Id.Equal(oid.ExtensionKeyUsage) {
			if ku, err := decodeKeyUsage(ext.Value); err == nil {
				names := oid.KeyUsages(ku)
				sort.Strings(names)
				fmt.Fprintf(w, "Extension: %s: %s\n", name, strings.Join(names, ", "))
				continue
			}
		}
		fmt.Fprintf(w, "Extension: %s\n", name)
	}
}

func decodeKeyUsage(der []byte) (x509.KeyUsage, error) {
	var bits asn1.BitString
	if _, err := asn1.Unmarshal(der, &bits); err != nil {
		return 0, errors.WithStack(err)
	}

	var ku x509.KeyUsage
	for i := 0; i < 9; i++ {
		if bits.At(i) != 0 {
			ku |= x509.KeyUsage(1 << uint(i))
		}
	}
	return ku, nil
}

// SubjectAltNames returns the openssl style rendering of the requested
// Subject Alternative Names: comma-separated KEY:VALUE tokens,
// or an empty string if none were requested.
func SubjectAltNames(csrv *x509.CertificateRequest) string {
	var tokens []string
	for _, dns := range csrv.DNSNames {
		tokens = append(tokens, "DNS:"+dns)
	}
	for _, email := range csrv.EmailAddresses {
		tokens = append(tokens, "email:"+email)
	}
	for _, ip := range csrv.IPAddresses {
		tokens = append(tokens, "IP Address:"+ip.String())
	}
	return strings.Join(tokens, ", ")
}
