package ledger

import (
	"strings"
	"unicode/utf16"
)

// AvatarColors is the fixed palette people are assigned from.
var AvatarColors = [...]string{
	"#FF6B6B", // coral red
	"#4ECDC4", // teal
	"#45B7D1", // sky blue
	"#96CEB4", // sage green
	"#FFEAA7", // soft yellow
	"#DDA0DD", // plum
	"#98D8C8", // mint
	"#F7DC6F", // gold
	"#BB8FCE", // lavender
	"#85C1E9", // light blue
}

const initialsLength = 2

// Initials returns the first two letters of a single-word name, or the first
// letters of the first and last word otherwise, upper-cased.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	if len(words) == 1 {
		runes := []rune(words[0])

		return strings.ToUpper(string(runes[:min(initialsLength, len(runes))]))
	}

	first := []rune(words[0])[0]
	last := []rune(words[len(words)-1])[0]

	return strings.ToUpper(string([]rune{first, last}))
}

// Color picks a palette entry from a hash of the name. The hash walks the
// UTF-16 code units as hash = unit + (int32(hash) << 5) - hash, so existing
// records keep the colours the web client assigned them.
func Color(name string) string {
	var hash int64

	for _, unit := range utf16.Encode([]rune(name)) {
		hash = int64(unit) + int64(int32(hash)<<5) - hash
	}

	if hash < 0 {
		hash = -hash
	}

	return AvatarColors[hash%int64(len(AvatarColors))]
}
