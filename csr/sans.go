package csr

import (
	"crypto/x509/pkix"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/secinfra/csrkit/certutil"
	"github.com/secinfra/csrkit/oid"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// GeneralName tags per RFC 5280, 4.2.1.6
const (
	nameTypeEmail = 1
	nameTypeDNS   = 2
	nameTypeIP    = 7
)

// ExtractSANs returns the categorized Subject Alternative Names requested
// by a PEM-encoded PKCS#10 request.
// An absent SubjectAltName extension yields the all-empty SANSet.
func ExtractSANs(rawText string) (SANSet, error) {
	csrv, err := certutil.ParseRequestFromPEM([]byte(rawText))
	if err != nil {
		return nil, newError(KindDecode, "request", err)
	}
	return SANsFromExtensions(csrv.Extensions)
}

// SANsFromExtensions walks the GeneralNames of the SubjectAltName
// extension, if present, and categorizes the entries:
// dNSName to DNS, iPAddress to "IP Address" in its textual form, and
// rfc822Name to email. Entries of any other type are skipped.
// The order of values within a category is the order of appearance.
func SANsFromExtensions(list []pkix.Extension) (SANSet, error) {
	set := NewSANSet()

	ext := certutil.FindExtension(list, oid.ExtensionSubjectAltName)
	if ext == nil {
		return set, nil
	}

	der := cryptobyte.String(ext.Value)
	if !der.ReadASN1(&der, cryptobyte_asn1.SEQUENCE) {
		return nil, newError(KindExtraction, "extension", errors.New("invalid subject alternative names"))
	}

	for !der.Empty() {
		var san cryptobyte.String
		var tag cryptobyte_asn1.Tag
		if !der.ReadAnyASN1(&san, &tag) {
			return nil, newError(KindExtraction, "extension", errors.New("invalid subject alternative name"))
		}

		switch int(tag ^ 0x80) {
		case nameTypeEmail:
			set[SANEmails] = append(set[SANEmails], string(san))
		case nameTypeDNS:
			set[SANDNSNames] = append(set[SANDNSNames], string(san))
		case nameTypeIP:
			switch len(san) {
			case net.IPv4len, net.IPv6len:
				set[SANIPAddresses] = append(set[SANIPAddresses], net.IP(san).String())
			default:
				return nil, newError(KindExtraction, "extension",
					errors.Errorf("invalid IP address length %d", len(san)))
			}
		}
	}

	return set, nil
}
