// Package textutil holds small text helpers: fuzzy similarity, rune-safe
// truncation and placeholder extraction for templated messages.
package textutil
