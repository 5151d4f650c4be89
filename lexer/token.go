package lexer

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	EOF Kind = iota
	EOL
	Number
	Identifier
	String
	// LineNumber is reserved for numeric line labels; Lex never produces it.
	LineNumber

	Plus
	Minus
	Multiply
	Divide
	Power
	Equals
	LessThan
	GreaterThan
	LessOrEqual
	GreaterOrEqual
	NotEqual

	LParen
	RParen
	Comma
	Semicolon
	Colon

	Let
	Print
	Input
	If
	Then
	Else
	For
	To
	Step
	Next
	End

	// Reserved words below are part of the dialect's vocabulary but are not
	// recognised by Lex; the parser and both back ends never see them.
	Goto
	Gosub
	Return
	Rem
	Stop
	Dim
	Read
	Data
	Restore

	Abs
	Rnd
	Int
	Sqr
	Sin
	Cos
	Tan
	Log
	Exp
	Len
	Mid
	Left
	Right
)

var kindNames = map[Kind]string{
	EOF:            "end of input",
	EOL:            "end of line",
	Number:         "number",
	Identifier:     "identifier",
	String:         "string",
	LineNumber:     "line number",
	Plus:           "+",
	Minus:          "-",
	Multiply:       "*",
	Divide:         "/",
	Power:          "^",
	Equals:         "=",
	LessThan:       "<",
	GreaterThan:    ">",
	LessOrEqual:    "<=",
	GreaterOrEqual: ">=",
	NotEqual:       "<>",
	LParen:         "(",
	RParen:         ")",
	Comma:          ",",
	Semicolon:      ";",
	Colon:          ":",
	Let:            "LET",
	Print:          "PRINT",
	Input:          "INPUT",
	If:             "IF",
	Then:           "THEN",
	Else:           "ELSE",
	For:            "FOR",
	To:             "TO",
	Step:           "STEP",
	Next:           "NEXT",
	End:            "END",
	Goto:           "GOTO",
	Gosub:          "GOSUB",
	Return:         "RETURN",
	Rem:            "REM",
	Stop:           "STOP",
	Dim:            "DIM",
	Read:           "READ",
	Data:           "DATA",
	Restore:        "RESTORE",
	Abs:            "ABS",
	Rnd:            "RND",
	Int:            "INT",
	Sqr:            "SQR",
	Sin:            "SIN",
	Cos:            "COS",
	Tan:            "TAN",
	Log:            "LOG",
	Exp:            "EXP",
	Len:            "LEN",
	Mid:            "MID",
	Left:           "LEFT",
	Right:          "RIGHT",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// keywords maps the upper-cased spelling of every word Lex turns into a
// keyword token. Anything else scans as an Identifier.
var keywords = map[string]Kind{
	"LET":   Let,
	"PRINT": Print,
	"IF":    If,
	"THEN":  Then,
	"ELSE":  Else,
	"FOR":   For,
	"TO":    To,
	"STEP":  Step,
	"NEXT":  Next,
	"END":   End,
	"INPUT": Input,
}

// LookupKeyword returns the keyword kind for an upper-cased word.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

type Token struct {
	Kind Kind
	Num  float64
	Text string
	Line int
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return "number " + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case Identifier:
		return "identifier " + t.Text
	case String:
		return fmt.Sprintf("string %q", t.Text)
	case EOF, EOL:
		return t.Kind.String()
	default:
		return fmt.Sprintf("'%s'", t.Kind)
	}
}

// IsComparison reports whether k is one of the six relational operators.
func (k Kind) IsComparison() bool {
	switch k {
	case Equals, LessThan, GreaterThan, LessOrEqual, GreaterOrEqual, NotEqual:
		return true
	default:
		return false
	}
}
