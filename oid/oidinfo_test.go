package oid_test

import (
	"crypto/x509"
	"encoding/asn1"
	"testing"

	"github.com/secinfra/csrkit/oid"
	"github.com/stretchr/testify/assert"
)

func Test_KeyUsages(t *testing.T) {
	assert.Equal(t, []string{"cert sign"}, oid.KeyUsages(x509.KeyUsageCertSign))
}

func Test_Strings(t *testing.T) {
	assert.Equal(t, []string{"2.5.29.17"}, oid.Strings(oid.ExtensionSubjectAltName))
}

func Test_AttributeShortName(t *testing.T) {
	tcases := []struct {
		id   asn1.ObjectIdentifier
		name string
	}{
		{oid.NameC, "C"},
		{oid.NameL, "L"},
		{oid.NameO, "O"},
		{oid.NameOU, "OU"},
		{oid.NameCN, "CN"},
		{oid.NameST, "ST"},
		{oid.NameEmailAddress, "emailAddress"},
		{asn1.ObjectIdentifier{1, 2, 3, 4}, ""},
	}

	for _, tc := range tcases {
		assert.Equal(t, tc.name, oid.AttributeShortName(tc.id))
	}
}
