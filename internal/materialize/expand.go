package materialize

import (
	"sort"

	"github.com/dhemric/spaenv/internal/env"
)

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

// Expand rewrites $NAME and ${NAME} tokens in src against the snapshot.
// The ${NAME} delimited form takes precedence at its position; bare $NAME
// extends the name greedily over identifier characters. Tokens whose name
// is absent from the snapshot are preserved verbatim, braces included.
// Substituted values are literal: a value containing $OTHER is not
// expanded again.
//
// Returns the rewritten text, the number of tokens replaced, and the sorted
// distinct names that were referenced but absent from the snapshot.
func Expand(src []byte, snap env.Snapshot) ([]byte, int, []string) {
	out := make([]byte, 0, len(src))
	replaced := 0
	missing := map[string]struct{}{}

	i := 0
	for i < len(src) {
		c := src[i]
		if c != '$' {
			out = append(out, c)
			i++
			continue
		}

		// Delimited form: ${NAME}
		if i+1 < len(src) && src[i+1] == '{' {
			j := i + 2
			for j < len(src) && isNameChar(src[j]) {
				j++
			}
			// A well-formed token needs a non-empty identifier-shaped name
			// and a closing brace. Anything else is not a token; emit the
			// "$" and rescan from the "{".
			if j < len(src) && src[j] == '}' && j > i+2 && isNameStart(src[i+2]) {
				name := string(src[i+2 : j])
				if val, ok := snap.Lookup(name); ok {
					out = append(out, val...)
					replaced++
				} else {
					out = append(out, src[i:j+1]...)
					missing[name] = struct{}{}
				}
				i = j + 1
				continue
			}
			out = append(out, '$')
			i++
			continue
		}

		// Bare form: $NAME, greedy over identifier characters.
		if i+1 < len(src) && isNameStart(src[i+1]) {
			j := i + 2
			for j < len(src) && isNameChar(src[j]) {
				j++
			}
			name := string(src[i+1 : j])
			if val, ok := snap.Lookup(name); ok {
				out = append(out, val...)
				replaced++
			} else {
				out = append(out, src[i:j]...)
				missing[name] = struct{}{}
			}
			i = j
			continue
		}

		// Lone "$" (end of input or followed by a non-identifier byte).
		out = append(out, '$')
		i++
	}

	var unresolved []string
	for name := range missing {
		unresolved = append(unresolved, name)
	}
	sort.Strings(unresolved)

	return out, replaced, unresolved
}
