package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// EncryptString encrypts plaintext under the compound key of appKey and
// workspaceKey and returns base64 ciphertext.
func EncryptString(appKey, workspaceKey []byte, plaintext string) (string, error) {
	ciphertext, err := EncryptBytes(appKey, workspaceKey, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptString reverses EncryptString.
func DecryptString(appKey, workspaceKey []byte, ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", apperr.NewInvalid(errors.Join(ErrInvalidCiphertext, err))
	}

	plaintext, err := DecryptBytes(appKey, workspaceKey, raw)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptBytes encrypts data under the compound key of appKey and workspaceKey.
// The result is nonce, then sealed data, then tag.
func EncryptBytes(appKey, workspaceKey, data []byte) ([]byte, error) {
	if err := ValidateKeys(appKey, workspaceKey); err != nil {
		return nil, err
	}
	key, err := deriveKey(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	return seal(key, data)
}

// DecryptBytes reverses EncryptBytes. Tampered ciphertext and the wrong keys
// both fail with ErrDecryptionFailed.
func DecryptBytes(appKey, workspaceKey, ciphertext []byte) ([]byte, error) {
	if err := ValidateKeys(appKey, workspaceKey); err != nil {
		return nil, err
	}
	key, err := deriveKey(appKey, workspaceKey)
	if err != nil {
		return nil, err
	}
	defer clearBytes(key)

	return open(key, ciphertext)
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrEncryptionFailed, err))
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrEncryptionFailed, err))
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func open(key, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrDecryptionFailed, err))
	}

	n := aead.NonceSize()
	if len(ciphertext) < n+aead.Overhead() {
		return nil, apperr.NewInvalid(ErrInvalidCiphertext)
	}

	plaintext, err := aead.Open(nil, ciphertext[:n], ciphertext[n:], nil)
	if err != nil {
		return nil, apperr.NewInvalid(errors.Join(ErrDecryptionFailed, err))
	}
	return plaintext, nil
}
