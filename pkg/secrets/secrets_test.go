package secrets_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
	"github.com/dmitrymomot/commonkit/pkg/secrets"
)

func newKeys(t *testing.T) (appKey, workspaceKey []byte) {
	t.Helper()
	appKey, err := secrets.GenerateKey()
	require.NoError(t, err)
	workspaceKey, err = secrets.GenerateKey()
	require.NoError(t, err)
	return appKey, workspaceKey
}

func TestEncryptDecryptString(t *testing.T) {
	t.Parallel()
	appKey, workspaceKey := newKeys(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"empty string", ""},
		{"simple text", "Hello, World!"},
		{"api key", "sk_test_1234567890abcdef"},
		{"json", `{"client_id":"abc123","client_secret":"xyz789"}`},
		{"unicode", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ciphertext, err := secrets.EncryptString(appKey, workspaceKey, tt.plaintext)
			require.NoError(t, err)
			if tt.plaintext != "" {
				assert.NotEqual(t, tt.plaintext, ciphertext)
			}

			decrypted, err := secrets.DecryptString(appKey, workspaceKey, ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestEncryptDecryptBytes(t *testing.T) {
	t.Parallel()
	appKey, workspaceKey := newKeys(t)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty bytes", []byte{}},
		{"single byte", []byte{42}},
		{"binary data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ciphertext, err := secrets.EncryptBytes(appKey, workspaceKey, tt.data)
			require.NoError(t, err)

			decrypted, err := secrets.DecryptBytes(appKey, workspaceKey, ciphertext)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.data, decrypted), "got %v, want %v", decrypted, tt.data)
		})
	}
}

func TestEncrypt_FreshNonce(t *testing.T) {
	t.Parallel()
	appKey, workspaceKey := newKeys(t)

	a, err := secrets.EncryptString(appKey, workspaceKey, "same")
	require.NoError(t, err)
	b, err := secrets.EncryptString(appKey, workspaceKey, "same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecrypt_WrongWorkspaceKey(t *testing.T) {
	t.Parallel()
	appKey, workspaceKey := newKeys(t)
	_, otherWorkspace := newKeys(t)

	ciphertext, err := secrets.EncryptString(appKey, workspaceKey, "secret-api-key")
	require.NoError(t, err)

	_, err = secrets.DecryptString(appKey, otherWorkspace, ciphertext)
	require.Error(t, err)
	assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestInvalidKeys(t *testing.T) {
	t.Parallel()
	validKey, err := secrets.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name         string
		appKey       []byte
		workspaceKey []byte
		wantErr      error
	}{
		{"nil app key", nil, validKey, secrets.ErrInvalidAppKey},
		{"nil workspace key", validKey, nil, secrets.ErrInvalidWorkspaceKey},
		{"short app key", make([]byte, 16), validKey, secrets.ErrInvalidAppKey},
		{"long workspace key", validKey, make([]byte, 64), secrets.ErrInvalidWorkspaceKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := secrets.EncryptString(tt.appKey, tt.workspaceKey, "test")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))

			_, err = secrets.DecryptBytes(tt.appKey, tt.workspaceKey, make([]byte, 64))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
		})
	}
}

func TestDecrypt_InvalidCiphertext(t *testing.T) {
	t.Parallel()
	appKey, workspaceKey := newKeys(t)

	valid, err := secrets.EncryptBytes(appKey, workspaceKey, []byte("payload"))
	require.NoError(t, err)
	tampered := bytes.Clone(valid)
	tampered[len(tampered)-1] ^= 0xFF

	tests := []struct {
		name       string
		ciphertext string
		wantErr    error
	}{
		{"not base64", "%%%", secrets.ErrInvalidCiphertext},
		{"too short", base64.StdEncoding.EncodeToString([]byte("short")), secrets.ErrInvalidCiphertext},
		{"tampered", base64.StdEncoding.EncodeToString(tampered), secrets.ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := secrets.DecryptString(appKey, workspaceKey, tt.ciphertext)
			assert.ErrorIs(t, err, tt.wantErr)

			var invalid apperr.InvalidError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestEncodeDecodeKey(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	require.Len(t, key, secrets.KeySize)

	decoded, err := secrets.DecodeKey(secrets.EncodeKey(key))
	require.NoError(t, err)
	assert.Equal(t, key, decoded)

	for _, bad := range []string{"", "not base64!", base64.StdEncoding.EncodeToString([]byte("short"))} {
		_, err := secrets.DecodeKey(bad)
		assert.ErrorIs(t, err, secrets.ErrInvalidKey, "%q", bad)
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err), "%q", bad)
	}
}

func TestConfig_Key(t *testing.T) {
	t.Parallel()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)

	got, err := secrets.Config{AppKey: secrets.EncodeKey(key)}.Key()
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = secrets.Config{}.Key()
	assert.ErrorIs(t, err, secrets.ErrInvalidKey)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := secrets.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, secrets.DefaultValidityMonths, cfg.CertValidityMonths)
}
