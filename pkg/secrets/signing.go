package secrets

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

const (
	pemPrivateKey = "PRIVATE KEY"
	pemPublicKey  = "PUBLIC KEY"
)

// KeyPair is an Ed25519 signing pair.
type KeyPair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// GenerateKeyPair returns a new random Ed25519 pair.
func GenerateKeyPair() (KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, apperr.NewUnclassified(err)
	}
	return KeyPair{Public: pub, Private: priv}, nil
}

// Sign signs message with priv and returns the base64 signature. A key whose
// public half does not match its seed is rejected.
func Sign(priv ed25519.PrivateKey, message []byte) (string, error) {
	if !validPrivateKey(priv) {
		return "", apperr.NewInvalid(ErrInvalidPrivateKey)
	}
	return base64.StdEncoding.EncodeToString(ed25519.Sign(priv, message)), nil
}

// Verify reports whether signature is a valid base64 signature of message by
// pub. A well-formed signature that does not match yields false and no error.
func Verify(pub ed25519.PublicKey, message []byte, signature string) (bool, error) {
	if len(pub) != ed25519.PublicKeySize {
		return false, apperr.NewInvalid(ErrInvalidPublicKey)
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, apperr.NewInvalid(errors.Join(ErrInvalidSignature, err))
	}
	if len(sig) != ed25519.SignatureSize {
		return false, apperr.NewInvalid(ErrInvalidSignature)
	}
	return ed25519.Verify(pub, message, sig), nil
}

// PrivateKeyPEM encodes the private key as a PKCS #8 "PRIVATE KEY" block.
func (kp KeyPair) PrivateKeyPEM() ([]byte, error) {
	if !validPrivateKey(kp.Private) {
		return nil, apperr.NewInvalid(ErrInvalidPrivateKey)
	}
	der, err := x509.MarshalPKCS8PrivateKey(kp.Private)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidPrivateKey, err))
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: der}), nil
}

// PublicKeyPEM encodes the public key as a PKIX "PUBLIC KEY" block.
func (kp KeyPair) PublicKeyPEM() ([]byte, error) {
	if len(kp.Public) != ed25519.PublicKeySize {
		return nil, apperr.NewInvalid(ErrInvalidPublicKey)
	}
	der, err := x509.MarshalPKIXPublicKey(kp.Public)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidPublicKey, err))
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: der}), nil
}

// ParsePrivateKeyPEM reads a key written by PrivateKeyPEM.
func ParsePrivateKeyPEM(data []byte) (ed25519.PrivateKey, error) {
	der, err := decodePEM(data, pemPrivateKey)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidPrivateKey, err))
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, apperr.NewInvalid(ErrInvalidPrivateKey)
	}
	return priv, nil
}

// ParsePublicKeyPEM reads a key written by PublicKeyPEM.
func ParsePublicKeyPEM(data []byte) (ed25519.PublicKey, error) {
	der, err := decodePEM(data, pemPublicKey)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidPublicKey, err))
	}
	pub, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, apperr.NewInvalid(ErrInvalidPublicKey)
	}
	return pub, nil
}

// validPrivateKey reports whether priv has the right size and its public half
// matches its seed.
func validPrivateKey(priv ed25519.PrivateKey) bool {
	return len(priv) == ed25519.PrivateKeySize && ed25519.NewKeyFromSeed(priv.Seed()).Equal(priv)
}

func decodePEM(data []byte, blockType string) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != blockType {
		return nil, apperr.NewInvalid(ErrInvalidPEM)
	}
	return block.Bytes, nil
}
