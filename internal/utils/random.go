package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// RandomStorageName builds a collision-resistant on-disk filename for an
// uploaded file: an 8-byte random hex prefix followed by the original base
// name and its extension, e.g. "a1b2c3d4e5f60718-statement.pdf".
//
// The random prefix prevents overwrite collisions between uploads that share
// an original name; the base name is preserved for operator readability.
func RandomStorageName(originalName string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating random file name: %w", err)
	}

	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)

	return hex.EncodeToString(buf) + "-" + base + ext, nil
}
