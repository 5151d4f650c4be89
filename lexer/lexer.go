// Package lexer turns BASIC source text into a flat token sequence.
//
// Lexing never fails: characters that start no token are dropped, an
// unterminated string runs to the end of the input, and a digit run that is
// not a valid number (such as "1.2.3") is discarded. A run too large for a
// float64 lexes as +Inf.
package lexer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Lex scans src in full. The result always ends with EOF, and with an EOL
// right before it whenever at least one token was produced.
func Lex(src string) []Token {
	r := []rune(src)
	toks := make([]Token, 0, len(r)/2+2)
	line := 1
	emit := func(kind Kind) {
		toks = append(toks, Token{Kind: kind, Line: line})
	}

	for i := 0; i < len(r); {
		ch := r[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			i++
		case ch == '\n':
			emit(EOL)
			line++
			i++
		case ch >= '0' && ch <= '9':
			j := i + 1
			for j < len(r) && (isDigit(r[j]) || r[j] == '.') {
				j++
			}
			if v, err := strconv.ParseFloat(string(r[i:j]), 64); err == nil || errors.Is(err, strconv.ErrRange) {
				toks = append(toks, Token{Kind: Number, Num: v, Line: line})
			}
			i = j
		case isIdentStart(ch):
			j := i + 1
			for j < len(r) && isIdentPart(r[j]) {
				j++
			}
			word := strings.Map(toASCIIUpper, string(r[i:j]))
			if kind, ok := LookupKeyword(word); ok {
				emit(kind)
			} else {
				toks = append(toks, Token{Kind: Identifier, Text: word, Line: line})
			}
			i = j
		case ch == '"':
			j := i + 1
			for j < len(r) && r[j] != '"' {
				j++
			}
			toks = append(toks, Token{Kind: String, Text: string(r[i+1 : j]), Line: line})
			line += strings.Count(string(r[i+1:j]), "\n")
			if j < len(r) {
				j++
			}
			i = j
		case ch == '<':
			i++
			switch {
			case i < len(r) && r[i] == '=':
				emit(LessOrEqual)
				i++
			case i < len(r) && r[i] == '>':
				emit(NotEqual)
				i++
			default:
				emit(LessThan)
			}
		case ch == '>':
			i++
			if i < len(r) && r[i] == '=' {
				emit(GreaterOrEqual)
				i++
			} else {
				emit(GreaterThan)
			}
		default:
			if kind, ok := singles[ch]; ok {
				emit(kind)
			}
			i++
		}
	}

	if len(toks) > 0 && toks[len(toks)-1].Kind != EOL {
		emit(EOL)
	}
	emit(EOF)
	return toks
}

var singles = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Multiply,
	'/': Divide,
	'^': Power,
	'=': Equals,
	'(': LParen,
	')': RParen,
	',': Comma,
	';': Semicolon,
	':': Colon,
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func toASCIIUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
