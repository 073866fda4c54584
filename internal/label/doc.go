// Package label assigns short mnemonic labels to ordered candidate
// positions. Labels are one character long while the alphabet has
// capacity, then expand to two characters by reserving alphabet runes
// as prefixes. Runes that immediately follow a match in the document
// can be excluded so that continued typing is never misread as a
// label selection.
package label
