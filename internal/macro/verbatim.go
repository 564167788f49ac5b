package macro

import (
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alnah/go-blogmark/internal/blog"
)

// Placeholder delimiters. Keys also carry a per-call nonce, so document
// text cannot forge one. Between the delimiters a key holds only digits
// and a hyphen, which no case mapping alters.
const (
	PlaceholderStart = "\uE000" // U+E000: Private Use Area
	PlaceholderEnd   = "\uE001" // U+E001: Private Use Area
)

// verbatimPattern matches <pre> and <code> regions, across newlines.
var verbatimPattern = regexp.MustCompile(`(?s)<pre.*?>.*?</pre>|<code.*?>.*?</code>`)

// ExcludingVerbatim runs r over markup with every <pre> and <code> region
// swapped out for an opaque placeholder, then puts the regions back, so
// macros inside code are never expanded.
//
// Placeholder keys carry a fresh random nonce per call and are restored in
// reverse insertion order.
func ExcludingVerbatim(markup string, rc blog.RenderContext, r Resolver) string {
	id := uuid.New()
	nonce := strconv.FormatUint(binary.BigEndian.Uint64(id[:8]), 10)

	var keys, saved []string
	markup = verbatimPattern.ReplaceAllStringFunc(markup, func(span string) string {
		key := PlaceholderStart + nonce + "-" + strconv.Itoa(len(keys)) + PlaceholderEnd
		keys = append(keys, key)
		saved = append(saved, span)
		return key
	})

	markup = r.Resolve(markup, rc)

	for i := len(keys) - 1; i >= 0; i-- {
		markup = strings.ReplaceAll(markup, keys[i], saved[i])
	}
	return markup
}
