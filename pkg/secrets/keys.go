package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

const (
	// KeySize is the length of application, workspace and keyring keys.
	KeySize = 32

	// hkdfInfo separates derived keys from other uses of the same inputs.
	hkdfInfo = "commonkit-secrets-v1"
)

// ValidateKeys checks that both keys are KeySize bytes long. Both lengths are
// compared before either result is reported.
func ValidateKeys(appKey, workspaceKey []byte) error {
	validApp := len(appKey) == KeySize
	validWorkspace := len(workspaceKey) == KeySize

	if !validApp {
		return apperr.NewInvalid(ErrInvalidAppKey)
	}
	if !validWorkspace {
		return apperr.NewInvalid(ErrInvalidWorkspaceKey)
	}
	return nil
}

// deriveKey returns the compound key for appKey and workspaceKey.
// The caller clears it with clearBytes once done.
func deriveKey(appKey, workspaceKey []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, appKey, workspaceKey, []byte(hkdfInfo))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrKeyDerivationFailed, err))
	}
	return key, nil
}

func clearBytes(b []byte) {
	clear(b)
}

// GenerateKey returns a new random KeySize-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, apperr.NewUnclassified(err)
	}
	return key, nil
}

// EncodeKey renders key as standard base64, the form DecodeKey accepts.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses a base64 key and checks its length.
func DecodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrInvalidKey, err))
	}
	if len(key) != KeySize {
		return nil, apperr.NewInvalid(ErrInvalidKey)
	}
	return key, nil
}
