package wizard

import "strings"

// AddTags merges a free-text entry into an existing hashtag list.
// The raw input is split on runs of whitespace and/or commas, tokens are
// trimmed and prefixed with '#' when missing, and anything already present
// (in the list or earlier in the same entry) is dropped. Existing tags keep
// their positions; survivors are appended in entry order.
func AddTags(existing []string, raw string) []string {
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}

	out := append([]string(nil), existing...)
	for _, tok := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !strings.HasPrefix(tok, "#") {
			tok = "#" + tok
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// RemoveTagAt returns the list without the tag at position i.
// Out-of-range indices leave the list unchanged.
func RemoveTagAt(existing []string, i int) []string {
	if i < 0 || i >= len(existing) {
		return append([]string(nil), existing...)
	}
	out := make([]string, 0, len(existing)-1)
	out = append(out, existing[:i]...)
	out = append(out, existing[i+1:]...)
	return out
}
