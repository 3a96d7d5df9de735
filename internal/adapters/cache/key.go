// Package cache implements the content-addressed result cache: a short
// content hash per parameter mapping and one JSON artifact per combination.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.trai.ch/zerr"
)

// keyLength is the hexadecimal prefix kept from the digest. Short keys keep
// artifact names readable; with a grid this small the collision probability
// is negligible but non-zero.
const keyLength = 8

// EncodeKey canonicalizes a parameter mapping and returns its short content
// hash. encoding/json marshals map keys in sorted order, so two mappings
// that differ only in key order produce the same key. Nil values serialize
// as null.
func EncodeKey(params map[string]any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", zerr.Wrap(err, "failed to canonicalize parameter mapping")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:keyLength], nil
}

// ArtifactName returns the deterministic artifact filename for one
// combination.
func ArtifactName(dataset, model, key string) string {
	return fmt.Sprintf("%s_%s_%s.json", dataset, model, key)
}
