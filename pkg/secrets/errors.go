package secrets

import "errors"

var (
	// Key validation
	ErrInvalidAppKey       = errors.New("invalid app key: must be 32 bytes")
	ErrInvalidWorkspaceKey = errors.New("invalid workspace key: must be 32 bytes")
	ErrInvalidKey          = errors.New("invalid key: must be 32 base64-encoded bytes")

	// Encryption and decryption
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	ErrKeyDerivationFailed = errors.New("key derivation failed")

	// Signing
	ErrInvalidPrivateKey = errors.New("invalid ed25519 private key")
	ErrInvalidPublicKey  = errors.New("invalid ed25519 public key")
	ErrInvalidSignature  = errors.New("invalid signature encoding")
	ErrInvalidPEM        = errors.New("invalid PEM block")

	// Certificates
	ErrMissingCommonName = errors.New("certificate common name is required")
	ErrCertificateFailed = errors.New("certificate generation failed")

	// Keyring
	ErrEmptyAlias    = errors.New("keyring alias is required")
	ErrWrongPassword = errors.New("wrong keyring password")
)
