package utils

import (
	"hash/fnv"
	"strings"
	"unicode"
)

var avatarPalette = []string{
	"#1976d2", "#2e7d32", "#ed6c02", "#9c27b0",
	"#d32f2f", "#0288d1", "#7b1fa2", "#388e3c",
}

// GenerateInitials derives up to two uppercase initials from a display
// name, one per name part.
func GenerateInitials(name string) string {
	parts := strings.Fields(name)
	initials := make([]rune, 0, 2)
	for _, part := range parts {
		initials = append(initials, unicode.ToUpper([]rune(part)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// GenerateAvatarColor picks a stable display color for a user id.
func GenerateAvatarColor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}
