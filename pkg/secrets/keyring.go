package secrets

import (
	"crypto/rand"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/crypto/scrypt"

	"github.com/dmitrymomot/commonkit/pkg/apperr"
)

// scrypt cost for interactive use: N=2^15, r=8, p=1.
const (
	scryptN  = 1 << 15
	scryptR  = 8
	scryptP  = 1
	saltSize = 16
)

type sealedKey struct {
	salt       []byte
	ciphertext []byte
}

// Keyring holds named keys in memory. Each entry is sealed with AES-GCM under a
// key stretched from its password with scrypt, so entries are unreadable without
// the password they were stored with. The zero value is not usable; call NewKeyring.
type Keyring struct {
	mu      sync.RWMutex
	entries map[string]sealedKey
}

// NewKeyring returns an empty keyring.
func NewKeyring() *Keyring {
	return &Keyring{entries: make(map[string]sealedKey)}
}

// Store seals key under password and saves it as alias, replacing any
// existing entry with that alias.
func (k *Keyring) Store(alias string, key []byte, password string) error {
	if alias == "" {
		return apperr.NewInvalid(ErrEmptyAlias)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return apperr.NewUnclassified(errors.Join(ErrKeyDerivationFailed, err))
	}
	wrap, err := stretch(password, salt)
	if err != nil {
		return err
	}
	defer clearBytes(wrap)

	ciphertext, err := seal(wrap, key)
	if err != nil {
		return err
	}

	k.mu.Lock()
	k.entries[alias] = sealedKey{salt: salt, ciphertext: ciphertext}
	k.mu.Unlock()
	return nil
}

// Retrieve unseals the key stored as alias.
func (k *Keyring) Retrieve(alias, password string) ([]byte, error) {
	k.mu.RLock()
	entry, ok := k.entries[alias]
	k.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound(fmt.Sprintf("key %q not found in keyring", alias))
	}

	wrap, err := stretch(password, entry.salt)
	if err != nil {
		return nil, err
	}
	defer clearBytes(wrap)

	key, err := open(wrap, entry.ciphertext)
	if errors.Is(err, ErrDecryptionFailed) {
		return nil, apperr.NewForbidden(errors.Join(ErrWrongPassword, err))
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

// Delete removes alias and reports whether it was present.
func (k *Keyring) Delete(alias string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.entries[alias]
	delete(k.entries, alias)
	return ok
}

// Aliases returns the stored aliases in sorted order.
func (k *Keyring) Aliases() []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return slices.Sorted(maps.Keys(k.entries))
}

func stretch(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, apperr.NewUnclassified(errors.Join(ErrKeyDerivationFailed, err))
	}
	return key, nil
}
