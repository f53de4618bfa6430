package certutil

import (
	"crypto"
	"crypto/dsa" //nolint:staticcheck // legacy requests still carry DSA keys
	"crypto/ecdsa"
	"crypto/rsa"

	"github.com/pkg/errors"
)

var errNilPublicKey = errors.New("nil public key")

// KeyAlgorithm is the public key algorithm of a request
type KeyAlgorithm int

// Supported key algorithms
const (
	KeyAlgorithmUnknown KeyAlgorithm = iota
	KeyAlgorithmRSA
	KeyAlgorithmDSA
	KeyAlgorithmDH
	KeyAlgorithmEC
)

func (a KeyAlgorithm) String() string {
	switch a {
	case KeyAlgorithmRSA:
		return "RSA"
	case KeyAlgorithmDSA:
		return "DSA"
	case KeyAlgorithmDH:
		return "DH"
	case KeyAlgorithmEC:
		return "EC"
	}
	return "Unknown"
}

// KeyInfo provides information about the key
type KeyInfo struct {
	Algorithm KeyAlgorithm
	KeySize   int
}

// NewKeyInfo returns *KeyInfo for the public key.
// The key size is the modulus or curve bit length as reported by the key,
// not rounded or normalized.
// Keys of an unrecognized type are reported as Unknown with zero size,
// only a nil key is an error.
func NewKeyInfo(k crypto.PublicKey) (*KeyInfo, error) {
	if k == nil {
		return nil, errNilPublicKey
	}

	ki := new(KeyInfo)
	switch typ := k.(type) {
	case *rsa.PublicKey:
		ki.Algorithm = KeyAlgorithmRSA
		ki.KeySize = typ.N.BitLen()
	case *dsa.PublicKey:
		ki.Algorithm = KeyAlgorithmDSA
		ki.KeySize = typ.P.BitLen()
	case *ecdsa.PublicKey:
		ki.Algorithm = KeyAlgorithmEC
		ki.KeySize = typ.Curve.Params().BitSize
	default:
		ki.Algorithm = KeyAlgorithmUnknown
	}
	return ki, nil
}
