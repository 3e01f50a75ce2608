// Package textnorm canonicalizes free-text ledger fields using Turkish
// locale casing rules. Records are entered by hand with inconsistent
// casing and spelling; every write path runs through these helpers so
// stored text converges to one display form.
package textnorm

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	turkishLower = cases.Lower(language.Turkish)
	turkishUpper = cases.Upper(language.Turkish)
)

// NormalizeSpaces trims the value and collapses internal whitespace
// runs to a single space.
func NormalizeSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeText returns the trimmed, single-spaced, Turkish-lowercased
// form of value. Used as the comparison key for names and units; a
// plain ASCII fold would corrupt the dotted/dotless İ/I distinction.
func NormalizeText(value string) string {
	return turkishLower.String(NormalizeSpaces(value))
}

// TitleCase produces the canonical display form: each word, each
// hyphenated part and each apostrophe segment is lowercased in the
// Turkish locale and then gets an uppercased first rune.
func TitleCase(value string) string {
	cleaned := NormalizeSpaces(value)
	if cleaned == "" {
		return ""
	}

	words := strings.Split(cleaned, " ")
	for i, word := range words {
		parts := strings.Split(word, "-")
		for j, part := range parts {
			segments := strings.Split(part, "'")
			for k, segment := range segments {
				segments[k] = titleSegment(segment)
			}
			parts[j] = strings.Join(segments, "'")
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}

func titleSegment(segment string) string {
	lower := turkishLower.String(segment)
	if lower == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(lower)
	return turkishUpper.String(lower[:size]) + lower[size:]
}

// NormalizeUnit maps known unit spellings to one canonical label and
// title-cases anything it does not recognize.
func NormalizeUnit(value string) string {
	normalized := NormalizeText(value)
	if normalized == "" {
		return ""
	}
	switch normalized {
	case "kg", "kilo", "kılo", "kilogram":
		return "Kg"
	case "tl":
		return "TL"
	}
	return TitleCase(value)
}

// DisplayUnit maps a stored unit to its display grouping: tins and
// pieces both read as "Adet", all kilogram spellings as "Kg".
func DisplayUnit(value string) string {
	switch NormalizeText(value) {
	case "adet", "teneke":
		return "Adet"
	case "kg", "kilo", "kılo", "kilogram":
		return "Kg"
	}
	return value
}

var diacriticFolds = strings.NewReplacer(
	"ç", "c",
	"ğ", "g",
	"ı", "i",
	"ö", "o",
	"ş", "s",
	"ü", "u",
)

// FoldKey lowercases value in the Turkish locale and folds Turkish
// diacritics to ASCII. Supplier ledger-mode matching keys on this form
// so "Bınçağ", "Bincag" and "BINÇAĞ" all resolve identically.
func FoldKey(value string) string {
	return diacriticFolds.Replace(NormalizeText(value))
}
