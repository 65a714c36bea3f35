package inflect

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbol is a name used as an identifier rather than as text, such as a
// route action or a registry key. Tokenize treats it like its string form.
type Symbol string

// String implements fmt.Stringer.
func (s Symbol) String() string {
	return string(s)
}

// Camelize converts a snake_case token to PascalCase.
// Each underscore-separated fragment has its first character upper-cased and
// the fragments are joined without a separator. The rest of each fragment is
// left untouched, so PascalCase input is returned as is.
// Example: "water_under_bridge" -> "WaterUnderBridge"
// Example: "OliverDrankGasoline" -> "OliverDrankGasoline"
func Camelize(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))
	capitalizeNext := true

	for _, r := range s {
		if r == '_' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Tokenize converts free-form text, camelCase or PascalCase to a snake_case token.
//
// The conversion spells "&" as "and", splits camelCase humps, lower-cases the
// result, collapses every run of characters that are not letters or digits
// into a single underscore, and trims underscores from both ends.
// Example: "Albus Dumbledore & his_friend" -> "albus_dumbledore_and_his_friend"
// Example: "thisStrangeJavalikeWord" -> "this_strange_javalike_word"
func Tokenize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "&", " and ")
	s = splitHumps(s)
	s = cases.Lower(language.Und).String(s)
	return collapseSeparators(s)
}

// TokenizePtr is the optional form of Tokenize: nil in, nil out.
func TokenizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	token := Tokenize(*s)
	return &token
}

// TokenizeAny tokenizes the string form of v.
// Strings, Symbols, string pointers and fmt.Stringer values are accepted
// directly; other values are formatted with fmt.Sprint. The boolean is false,
// and the token empty, when v is nil or a nil string pointer.
func TokenizeAny(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return Tokenize(x), true
	case Symbol:
		return Tokenize(string(x)), true
	case *string:
		if x == nil {
			return "", false
		}
		return Tokenize(*x), true
	case fmt.Stringer:
		return Tokenize(x.String()), true
	default:
		return Tokenize(fmt.Sprint(x)), true
	}
}

// splitHumps inserts an underscore between every lowercase letter that is
// directly followed by an uppercase letter.
func splitHumps(s string) string {
	var result strings.Builder
	result.Grow(len(s) + len(s)/4)

	prevLower := false
	for _, r := range s {
		isUpper := unicode.IsUpper(r)
		if prevLower && isUpper {
			result.WriteByte('_')
		}
		result.WriteRune(r)
		prevLower = unicode.IsLower(r)
	}

	return result.String()
}

// collapseSeparators replaces each run of non-word runes with one underscore
// and drops leading and trailing runs entirely.
func collapseSeparators(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	pending := false
	for _, r := range s {
		if !isWordRune(r) {
			pending = true
			continue
		}
		if pending && result.Len() > 0 {
			result.WriteByte('_')
		}
		pending = false
		result.WriteRune(r)
	}

	return result.String()
}

// isWordRune reports whether r belongs inside a token. Combining marks are
// kept so that lower-casing cannot split a letter from its accent.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
