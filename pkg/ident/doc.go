// Package ident generates random identifiers: UUIDs, session identifiers,
// numeric one-time codes, alphanumeric strings and hex colors. Everything
// except NewID reads from crypto/rand.
package ident
