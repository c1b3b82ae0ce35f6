package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest identifies a source text for the tree cache.
type Digest [sha256.Size]byte

// contentDigest: H(schema || content). Смена схемы кеша меняет все ключи.
func contentDigest(content []byte) Digest {
	h := sha256.New()
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], treeCacheSchemaVersion)
	_, _ = h.Write(schema[:])
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
