package main

import "math"

// TokenType is the type of token (identifier, operator, literal, etc.).
type TokenType string

const (
	// Special tokens
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // x, Point, _tmp1
	INT    = "INT"    // 12345
	STRING = "STRING" // "hello"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	NOT      = "~"
	AND      = "&"
	OR       = "|"

	EQ     = "=="
	NOT_EQ = "~="
	LT     = "<"
	GT     = ">"
	LE     = "<="
	GE     = ">="

	PLUS_PLUS   = "++"
	MINUS_MINUS = "--"
	WRITE_OP    = "<<"
	READ_OP     = ">>"

	// Delimiters
	COMMA    = ","
	COLON    = ":"
	DOT      = "."
	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	INTEGER = "INTEGER"
	LOGICAL = "LOGICAL"
	VOID    = "VOID"
	TUPLE   = "TUPLE"
	IF      = "IF"
	ELSE    = "ELSE"
	WHILE   = "WHILE"
	READ    = "READ"
	WRITE   = "WRITE"
	RETURN  = "RETURN"
	TRUE    = "TRUE"
	FALSE   = "FALSE"
)

var keywords = map[string]TokenType{
	"integer": INTEGER,
	"logical": LOGICAL,
	"void":    VOID,
	"tuple":   TUPLE,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"read":    READ,
	"write":   WRITE,
	"return":  RETURN,
	"True":    TRUE,
	"False":   FALSE,
}

// Lexer scans base-language source. The current token lives in the Curr*
// fields; call NextToken repeatedly until CurrTokenType == EOF.
type Lexer struct {
	input []byte // always ends with a 0 byte
	pos   int
	line  int
	col   int

	CurrTokenType TokenType
	CurrLiteral   string
	CurrIntValue  int64 // only meaningful when CurrTokenType == INT
	CurrLine      int
	CurrCol       int

	Errors *ErrorCollection
}

// NewLexer prepares a lexer over input. A trailing 0 byte is added when the
// caller did not supply one.
func NewLexer(input []byte) *Lexer {
	if len(input) == 0 || input[len(input)-1] != 0 {
		buf := make([]byte, len(input), len(input)+1)
		copy(buf, input)
		input = append(buf, 0)
	}
	return &Lexer{
		input:  input,
		line:   1,
		col:    1,
		Errors: NewErrorCollection(),
	}
}

func (l *Lexer) peekByte(offset int) byte {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) emit(typ TokenType, n int) {
	start := l.pos
	for i := 0; i < n; i++ {
		l.advance()
	}
	l.CurrTokenType = typ
	l.CurrLiteral = string(l.input[start:l.pos])
}

// NextToken scans the next token into the Curr* fields.
func (l *Lexer) NextToken() {
	for {
		l.skipWhitespaceAndComments()

		l.CurrLine = l.line
		l.CurrCol = l.col
		l.CurrIntValue = 0

		c := l.input[l.pos]
		nxt := l.peekByte(1)

		switch {
		case c == 0:
			l.CurrTokenType = EOF
			l.CurrLiteral = ""
		case c == '=' && nxt == '=':
			l.emit(EQ, 2)
		case c == '=':
			l.emit(ASSIGN, 1)
		case c == '~' && nxt == '=':
			l.emit(NOT_EQ, 2)
		case c == '~':
			l.emit(NOT, 1)
		case c == '+' && nxt == '+':
			l.emit(PLUS_PLUS, 2)
		case c == '+':
			l.emit(PLUS, 1)
		case c == '-' && nxt == '-':
			l.emit(MINUS_MINUS, 2)
		case c == '-':
			l.emit(MINUS, 1)
		case c == '*':
			l.emit(ASTERISK, 1)
		case c == '/':
			l.emit(SLASH, 1)
		case c == '&':
			l.emit(AND, 1)
		case c == '|':
			l.emit(OR, 1)
		case c == '<' && nxt == '=':
			l.emit(LE, 2)
		case c == '<' && nxt == '<':
			l.emit(WRITE_OP, 2)
		case c == '<':
			l.emit(LT, 1)
		case c == '>' && nxt == '=':
			l.emit(GE, 2)
		case c == '>' && nxt == '>':
			l.emit(READ_OP, 2)
		case c == '>':
			l.emit(GT, 1)
		case c == ',':
			l.emit(COMMA, 1)
		case c == ':':
			l.emit(COLON, 1)
		case c == '.':
			l.emit(DOT, 1)
		case c == '(':
			l.emit(LPAREN, 1)
		case c == ')':
			l.emit(RPAREN, 1)
		case c == '{':
			l.emit(LBRACE, 1)
		case c == '}':
			l.emit(RBRACE, 1)
		case c == '[':
			l.emit(LBRACKET, 1)
		case c == ']':
			l.emit(RBRACKET, 1)
		case c == '"':
			if !l.readString() {
				continue
			}
		case isLetter(c):
			lit := l.readIdentifier()
			if kw, ok := keywords[lit]; ok {
				l.CurrTokenType = kw
			} else {
				l.CurrTokenType = IDENT
			}
			l.CurrLiteral = lit
		case isDigit(c):
			l.CurrLiteral, l.CurrIntValue = l.readNumber()
			l.CurrTokenType = INT
		default:
			l.Errors.Report(l.line, l.col, "Illegal character ignored: "+string(c))
			l.advance()
			continue
		}
		return
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		c := l.input[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
			l.advance()
		case c == '$' || (c == '/' && l.peekByte(1) == '/'):
			for l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
				l.advance()
			}
		default:
			return
		}
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.advance()
	}
	return string(l.input[start:l.pos])
}

// readNumber clamps literals that do not fit in 32 bits to math.MaxInt32.
func (l *Lexer) readNumber() (string, int64) {
	start := l.pos
	var val int64
	for isDigit(l.input[l.pos]) {
		if val <= math.MaxInt32 {
			val = val*10 + int64(l.input[l.pos]-'0')
		}
		l.advance()
	}
	if val > math.MaxInt32 {
		val = math.MaxInt32
	}
	return string(l.input[start:l.pos]), val
}

// readString scans a string literal. CurrLiteral keeps the quotes and the
// escapes exactly as written. It returns false when the literal was
// unterminated or malformed; the literal is then dropped after reporting.
func (l *Lexer) readString() bool {
	line, col := l.line, l.col
	start := l.pos
	l.advance() // opening "

	badEscape := false
	for {
		c := l.input[l.pos]
		if c == 0 || c == '\n' {
			l.Errors.Report(line, col, "Unterminated string literal ignored")
			return false
		}
		if c == '"' {
			l.advance()
			break
		}
		if c == '\\' {
			switch l.peekByte(1) {
			case 'n', 't', '"', '\\', '\'':
			case 0, '\n':
				l.advance()
				continue
			default:
				badEscape = true
			}
			l.advance()
		}
		l.advance()
	}

	if badEscape {
		l.Errors.Report(line, col, "Bad escape in string literal ignored")
		return false
	}
	l.CurrTokenType = STRING
	l.CurrLiteral = string(l.input[start:l.pos])
	return true
}
