package classify

import "strings"

// confusableMap maps the most common cross-script homoglyphs to ASCII.
// Covers Cyrillic and Greek characters that visually resemble Latin
// letters, plus Latin small capitals, which survive NFKC.
var confusableMap = map[rune]rune{
	// Cyrillic → Latin
	'а': 'a', // а
	'е': 'e', // е
	'і': 'i', // і (Ukrainian)
	'о': 'o', // о
	'р': 'p', // р
	'с': 'c', // с
	'у': 'y', // у
	'х': 'x', // х
	'ъ': 'b', // ъ (looks like b in some fonts)
	'г': 'r', // г (lowercase looks like r in italic faces)
	'А': 'A', // А
	'В': 'B', // В
	'Е': 'E', // Е
	'К': 'K', // К
	'М': 'M', // М
	'Н': 'H', // Н
	'О': 'O', // О
	'Р': 'P', // Р
	'С': 'C', // С
	'Т': 'T', // Т
	'Х': 'X', // Х
	'Ч': 'Y', // Ч (loose)
	// Greek → Latin
	'α': 'a', // α
	'ε': 'e', // ε
	'ι': 'i', // ι
	'ο': 'o', // ο
	'ρ': 'p', // ρ
	'τ': 't', // τ (loose)
	'Α': 'A', // Α
	'Β': 'B', // Β
	'Ε': 'E', // Ε
	'Η': 'H', // Η
	'Ι': 'I', // Ι
	'Κ': 'K', // Κ
	'Μ': 'M', // Μ
	'Ν': 'N', // Ν
	'Ο': 'O', // Ο
	'Ρ': 'P', // Ρ
	'Τ': 'T', // Τ
	'Χ': 'X', // Χ
	'Υ': 'Y', // Υ
	'Ζ': 'Z', // Ζ
	// Latin small capitals (U+1D00 block)
	'ᴀ': 'a', // ᴀ
	'ᴄ': 'c', // ᴄ
	'ᴅ': 'd', // ᴅ
	'ᴇ': 'e', // ᴇ
	'ɢ': 'g', // ɢ
	'ʜ': 'h', // ʜ
	'ɪ': 'i', // ɪ
	'ᴊ': 'j', // ᴊ
	'ᴋ': 'k', // ᴋ
	'ʟ': 'l', // ʟ
	'ᴍ': 'm', // ᴍ
	'ɴ': 'n', // ɴ
	'ᴏ': 'o', // ᴏ
	'ᴘ': 'p', // ᴘ
	'ʀ': 'r', // ʀ
	'ꜱ': 's', // ꜱ
	'ᴛ': 't', // ᴛ
	'ᴜ': 'u', // ᴜ
	'ᴠ': 'v', // ᴠ
	'ᴡ': 'w', // ᴡ
}

// invisibleRunes is the set of zero-width and formatting characters that a
// command can hide inside a verb. "r\u200dm" reads as "rm" but would not
// match the deletion pattern without stripping.
var invisibleRunes = map[rune]bool{
	'\u200B': true, // zero-width space
	'\u200C': true, // zero-width non-joiner
	'\u200D': true, // zero-width joiner
	'\uFEFF': true, // zero-width no-break space (BOM)
	'\u00AD': true, // soft hyphen
	'\u034F': true, // combining grapheme joiner
	'\u061C': true, // arabic letter mark
	'\u180E': true, // mongolian vowel separator
	'\u2060': true, // word joiner
	'\u2061': true, // function application
	'\u2062': true, // invisible times
	'\u2063': true, // invisible separator
	'\u2064': true, // invisible plus
	'\u206A': true, // inhibit symmetric swapping
	'\u206B': true, // activate symmetric swapping
	'\u206C': true, // inhibit arabic form shaping
	'\u206D': true, // activate arabic form shaping
	'\u206E': true, // national digit shapes
	'\u206F': true, // nominal digit shapes
	'\u200E': true, // left-to-right mark
	'\u200F': true, // right-to-left mark
	'\u202A': true, // left-to-right embedding
	'\u202B': true, // right-to-left embedding
	'\u202C': true, // pop directional formatting
	'\u202D': true, // left-to-right override
	'\u202E': true, // right-to-left override
}

// stripInvisible removes zero-width and formatting characters.
func stripInvisible(s string) string {
	return strings.Map(func(r rune) rune {
		if invisibleRunes[r] {
			return -1
		}
		return r
	}, s)
}

// stripConfusables replaces cross-script homoglyphs with ASCII equivalents.
func stripConfusables(s string) string {
	return strings.Map(func(r rune) rune {
		if ascii, ok := confusableMap[r]; ok {
			return ascii
		}
		return r
	}, s)
}
