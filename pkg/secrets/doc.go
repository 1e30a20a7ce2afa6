// Package secrets protects key material and signs payloads.
//
// Symmetric encryption derives a 32-byte key from an application key and a
// workspace key with HKDF-SHA-256 and seals data with AES-256-GCM. The nonce
// is prepended to the ciphertext, so a sealed value is self-contained.
//
//	appKey, _ := secrets.GenerateKey()
//	workspaceKey, _ := secrets.GenerateKey()
//
//	ct, err := secrets.EncryptString(appKey, workspaceKey, "super-secret")
//	plain, err := secrets.DecryptString(appKey, workspaceKey, ct)
//
// Signatures use Ed25519. GenerateKeyPair creates a pair, Sign returns a
// base64 signature and Verify checks one. Key pairs round-trip through PEM
// and GenerateCertificate issues a self-signed CA certificate for a pair.
//
// Keyring keeps named symmetric keys in memory, each sealed under a key
// stretched from its own password with scrypt.
//
// # Errors
//
// Every failure is an apperr taxonomy member wrapping one of the package
// sentinels. Malformed keys, signatures and ciphertexts are apperr.InvalidError,
// a wrong keyring password is apperr.ForbiddenError, an unknown alias is
// apperr.NotFoundError, and failures of the random source surface as
// apperr.UnclassifiedError. errors.Is matches the sentinels through all of them.
package secrets
