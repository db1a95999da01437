package codegen

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// quote escapes s for a double quoted literal: control escapes for \n \r \t \b \\ and \",
// \uXXXX for other codepoints below 0x20 or from 0xff up. wide writes codepoints beyond
// the basic multilingual plane.
func quote(s string, wide func(sb *strings.Builder, r rune)) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			switch {
			case r > 0xffff:
				wide(&sb, r)
			case r < 0x20 || r >= 0xff:
				fmt.Fprintf(&sb, `\u%04x`, r)
			default:
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// quoteUTF16 writes astral codepoints as surrogate pairs, as Java and Kotlin expect.
func quoteUTF16(s string) string {
	return quote(s, func(sb *strings.Builder, r rune) {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(sb, `\u%04x\u%04x`, hi, lo)
	})
}

func quoteGo(s string) string {
	return quote(s, func(sb *strings.Builder, r rune) {
		fmt.Fprintf(sb, `\U%08x`, r)
	})
}
