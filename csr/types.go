package csr

import (
	"crypto/x509/pkix"

	"github.com/secinfra/csrkit/certutil"
	"github.com/secinfra/csrkit/oid"
)

// SAN categories
const (
	SANDNSNames    = "DNS"
	SANIPAddresses = "IP Address"
	SANEmails      = "email"
)

// Subject maps DN attribute short codes, such as C, L, O, OU, CN and
// emailAddress, to their values. When an attribute repeats in the DN,
// the first occurrence wins.
type Subject map[string]string

// Get returns the attribute value, or an empty string if not present
func (s Subject) Get(code string) string {
	return s[code]
}

func subjectFromName(name *pkix.Name) Subject {
	subj := Subject{}
	for _, atv := range name.Names {
		code := oid.AttributeShortName(atv.Type)
		if code == "" {
			continue
		}
		if _, ok := subj[code]; ok {
			continue
		}
		if v, ok := atv.Value.(string); ok {
			subj[code] = v
		}
	}
	return subj
}

// SANSet maps a SAN category to the values of that category,
// in the order they appear in the request.
// All three categories are always present as keys, possibly empty.
type SANSet map[string][]string

// NewSANSet returns an empty SANSet with all categories present
func NewSANSet() SANSet {
	return SANSet{
		SANDNSNames:    {},
		SANIPAddresses: {},
		SANEmails:      {},
	}
}

func (s SANSet) clone() SANSet {
	c := SANSet{}
	for k, v := range s {
		vals := make([]string, len(v))
		copy(vals, v)
		c[k] = vals
	}
	return c
}

// CertificateSigningRequest is a parsed PKCS#10 request.
// It is created by Parse and is immutable after construction.
type CertificateSigningRequest struct {
	subject Subject
	key     certutil.KeyInfo
	pem     string
	sans    SANSet
}

// GetSubject returns the full subject mapping
func (r *CertificateSigningRequest) GetSubject() Subject {
	subj := Subject{}
	for k, v := range r.subject {
		subj[k] = v
	}
	return subj
}

// GetCountry returns the C attribute, or an empty string
func (r *CertificateSigningRequest) GetCountry() string {
	return r.subject.Get("C")
}

// GetLocality returns the L attribute, or an empty string
func (r *CertificateSigningRequest) GetLocality() string {
	return r.subject.Get("L")
}

// GetOrganization returns the O attribute, or an empty string
func (r *CertificateSigningRequest) GetOrganization() string {
	return r.subject.Get("O")
}

// GetOrganizationUnit returns the OU attribute, or an empty string
func (r *CertificateSigningRequest) GetOrganizationUnit() string {
	return r.subject.Get("OU")
}

// GetCommonName returns the CN attribute, or an empty string
func (r *CertificateSigningRequest) GetCommonName() string {
	return r.subject.Get("CN")
}

// GetEmail returns the emailAddress attribute, or an empty string
func (r *CertificateSigningRequest) GetEmail() string {
	return r.subject.Get("emailAddress")
}

// GetKeyType returns the public key algorithm
func (r *CertificateSigningRequest) GetKeyType() certutil.KeyAlgorithm {
	return r.key.Algorithm
}

// GetKeyTypeString returns the human label of the public key algorithm,
// "Unknown" for unrecognized values
func (r *CertificateSigningRequest) GetKeyTypeString() string {
	return r.key.Algorithm.String()
}

// GetKeyBits returns the public key bit length
func (r *CertificateSigningRequest) GetKeyBits() int {
	return r.key.KeySize
}

// GetPEM returns the original input, unmodified
func (r *CertificateSigningRequest) GetPEM() string {
	return r.pem
}

// GetSANs returns the full SANSet
func (r *CertificateSigningRequest) GetSANs() SANSet {
	return r.sans.clone()
}
