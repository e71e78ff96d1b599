package sqlgen

import (
	"fmt"
	"strings"
)

// QuoteLiteral renders s as a single-quoted SQL string literal. Embedded
// single quotes are doubled; nothing else is escaped, so the result is only
// safe for trusted text.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// UnquoteLiteral reverses QuoteLiteral
func UnquoteLiteral(lit string) (string, error) {
	value, rest, err := readLiteral(lit)
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", fmt.Errorf("%w: trailing input %q", ErrMalformedLiteral, rest)
	}
	return value, nil
}

// readLiteral consumes one quoted literal from the start of s and returns
// the decoded value plus the unconsumed input.
func readLiteral(s string) (string, string, error) {
	if !strings.HasPrefix(s, "'") {
		return "", s, fmt.Errorf("%w: missing opening quote", ErrMalformedLiteral)
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), s[i+1:], nil
	}

	return "", s, fmt.Errorf("%w: missing closing quote", ErrMalformedLiteral)
}
