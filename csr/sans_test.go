package csr_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"net"
	"testing"

	"github.com/secinfra/csrkit/csr"
	"github.com/secinfra/csrkit/oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanExtension(t *testing.T, names []asn1.RawValue) pkix.Extension {
	t.Helper()

	val, err := asn1.Marshal(names)
	require.NoError(t, err)

	return pkix.Extension{
		Id:    oid.ExtensionSubjectAltName,
		Value: val,
	}
}

func TestExtractSANs(t *testing.T) {
	rawText := makeCSRPEM(t, &x509.CertificateRequest{
		Subject:     pkix.Name{CommonName: "test.example.com"},
		DNSNames:    []string{"a.example.com", "b.example.com"},
		IPAddresses: []net.IP{net.ParseIP("10.0.0.1")},
	}, nil)

	sans, err := csr.ExtractSANs(rawText)
	require.NoError(t, err)
	assert.Equal(t, csr.SANSet{
		"DNS":        {"a.example.com", "b.example.com"},
		"IP Address": {"10.0.0.1"},
		"email":      {},
	}, sans)
}

func TestExtractSANsDecodeError(t *testing.T) {
	_, err := csr.ExtractSANs("not a csr")
	require.Error(t, err)
	assert.True(t, csr.IsKind(err, csr.KindDecode))
}

func TestSANsFromExtensionsAbsent(t *testing.T) {
	sans, err := csr.SANsFromExtensions(nil)
	require.NoError(t, err)
	assert.Equal(t, csr.NewSANSet(), sans)

	sans, err = csr.SANsFromExtensions([]pkix.Extension{
		{Id: oid.ExtensionKeyUsage, Value: []byte{0x03, 0x02, 0x05, 0xA0}},
	})
	require.NoError(t, err)
	assert.Equal(t, csr.NewSANSet(), sans)
}

// Unrecognized general-name types, such as URIs and otherNames,
// are skipped without error.
func TestSANsFromExtensionsSkipsOtherTypes(t *testing.T) {
	ext := sanExtension(t, []asn1.RawValue{
		{Class: asn1.ClassContextSpecific, Tag: 2, Bytes: []byte("a.example.com")},
		{Class: asn1.ClassContextSpecific, Tag: 6, Bytes: []byte("https://example.com/x")},
		{Class: asn1.ClassContextSpecific, Tag: 1, Bytes: []byte("ops@example.com")},
		{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: []byte{0x06, 0x01, 0x55}},
		{Class: asn1.ClassContextSpecific, Tag: 7, Bytes: net.ParseIP("10.0.0.1").To4()},
		{Class: asn1.ClassContextSpecific, Tag: 2, Bytes: []byte("b.example.com")},
	})

	sans, err := csr.SANsFromExtensions([]pkix.Extension{ext})
	require.NoError(t, err)
	assert.Equal(t, csr.SANSet{
		"DNS":        {"a.example.com", "b.example.com"},
		"IP Address": {"10.0.0.1"},
		"email":      {"ops@example.com"},
	}, sans)
}

func TestSANsFromExtensionsIPv6(t *testing.T) {
	ext := sanExtension(t, []asn1.RawValue{
		{Class: asn1.ClassContextSpecific, Tag: 7, Bytes: net.ParseIP("2001:db8::1").To16()},
	})

	sans, err := csr.SANsFromExtensions([]pkix.Extension{ext})
	require.NoError(t, err)
	assert.Equal(t, []string{"2001:db8::1"}, sans["IP Address"])
}

func TestSANsFromExtensionsCorrupt(t *testing.T) {
	tcases := []struct {
		name  string
		value []byte
	}{
		{"not a sequence", []byte{0x02, 0x01, 0x01}},
		{"truncated", []byte{0x30, 0x05, 0x82}},
		{"empty", nil},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.SANsFromExtensions([]pkix.Extension{
				{Id: oid.ExtensionSubjectAltName, Value: tc.value},
			})
			require.Error(t, err)
			assert.True(t, csr.IsKind(err, csr.KindExtraction))
		})
	}
}

func TestSANsFromExtensionsBadIP(t *testing.T) {
	ext := sanExtension(t, []asn1.RawValue{
		{Class: asn1.ClassContextSpecific, Tag: 7, Bytes: []byte{10, 0, 0}},
	})

	_, err := csr.SANsFromExtensions([]pkix.Extension{ext})
	require.Error(t, err)
	assert.True(t, csr.IsKind(err, csr.KindExtraction))
	assert.Contains(t, err.Error(), "invalid IP address length 3")
}
