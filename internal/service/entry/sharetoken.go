package entry

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// shareTokenBytes gives 256 bits of entropy; collisions are negligible and
// treated as a storage-layer bug when they somehow occur.
const shareTokenBytes = 32

// generateShareToken produces a URL-safe opaque token.
func generateShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
