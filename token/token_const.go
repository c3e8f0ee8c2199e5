package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=
	Increment        // ++
	Decrement        // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=
	Assign         // =
	Not            // !
	BitwiseNot     // ~

	LeftParenthesis  // (
	LeftBracket      // [
	LeftBrace        // {
	Comma            // ,
	Period           // .
	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	Arrow            // =>
	Ellipsis         // ...

	Identifier
	Keyword
	Boolean
	Null

	If
	In
	Var
	Let
	New
	This
	Else
	Void
	Const
	While
	Return
	Typeof
	Delete
	Function
	InstanceOf
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Number:                   "Number",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	If:                       "if",
	In:                       "in",
	Var:                      "var",
	Let:                      "let",
	New:                      "new",
	This:                     "this",
	Else:                     "else",
	Void:                     "void",
	Const:                    "const",
	While:                    "while",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Function:                 "function",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]Token{
	"if":         If,
	"in":         In,
	"var":        Var,
	"let":        Let,
	"new":        New,
	"this":       This,
	"else":       Else,
	"void":       Void,
	"const":      Const,
	"while":      While,
	"return":     Return,
	"typeof":     Typeof,
	"delete":     Delete,
	"function":   Function,
	"instanceof": InstanceOf,
	"true":       Boolean,
	"false":      Boolean,
	"null":       Null,

	// Recognized but not supported by the parser.
	"do":       Keyword,
	"for":      Keyword,
	"try":      Keyword,
	"case":     Keyword,
	"with":     Keyword,
	"enum":     Keyword,
	"break":    Keyword,
	"catch":    Keyword,
	"class":    Keyword,
	"super":    Keyword,
	"throw":    Keyword,
	"yield":    Keyword,
	"await":    Keyword,
	"export":   Keyword,
	"import":   Keyword,
	"switch":   Keyword,
	"default":  Keyword,
	"extends":  Keyword,
	"finally":  Keyword,
	"continue": Keyword,
	"debugger": Keyword,
}
