package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

var testStrings = []string{
	"hello world",
	"Hello   World   Test   Data",
	`say "hello" to 'them'`,
	"<p>HTML content</p><script>alert('test')</script>",
	"This    has     extra    whitespace",
	"héllo wörld ünïcode",
	strings.Repeat("a", 1000),
}

func BenchmarkEscapeHTML(b *testing.B) {
	for _, s := range testStrings {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = sanitizer.EscapeHTML(s)
			}
		})
	}
}

func BenchmarkStripTags(b *testing.B) {
	input := "<div><p>Hello <b>world</b></p><br/><a href='x'>link</a></div>"
	for b.Loop() {
		_ = sanitizer.StripTags(input)
	}
}

func BenchmarkCollapseSpaces(b *testing.B) {
	input := "  This    has \t\t extra \n\n whitespace   "
	for b.Loop() {
		_ = sanitizer.CollapseSpaces(input)
	}
}

func BenchmarkCharsetTruncate(b *testing.B) {
	utf8, err := sanitizer.LookupCharset("UTF-8")
	if err != nil {
		b.Fatal(err)
	}
	latin1, err := sanitizer.LookupCharset("ISO-8859-1")
	if err != nil {
		b.Fatal(err)
	}
	for _, s := range testStrings {
		b.Run("utf8/"+s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = utf8.Truncate(s, 10)
			}
		})
		b.Run("latin1/"+s[:min(20, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = latin1.Truncate(s, 10)
			}
		})
	}
}

func BenchmarkLookupTransform(b *testing.B) {
	for b.Loop() {
		fn, _ := sanitizer.LookupTransform("trim|collapse|lower")
		_ = fn("  Hello   World  ")
	}
}
