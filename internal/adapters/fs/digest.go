package fs

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxhash digest of data as a hex string.
func Digest(data []byte) string {
	sum := xxhash.New()
	_, _ = sum.Write(data)
	return hex.EncodeToString(sum.Sum(nil))
}
