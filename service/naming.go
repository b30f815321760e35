package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UniqueFileName builds a collision-resistant stored name from the original
// filename: the base name sanitized to lower-case alphanumerics, a
// millisecond timestamp and a random token, keeping the extension. No
// lookup against existing names is performed; the token makes collisions
// negligible, not impossible.
func UniqueFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, base)

	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	return fmt.Sprintf("%s_%d_%s%s", sanitized, time.Now().UnixMilli(), token, ext)
}
