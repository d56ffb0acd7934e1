package token

// Kind represents the category of a PHP token.
type Kind uint8

const (
	// Invalid indicates a byte the lexer could not classify.
	Invalid Kind = iota

	// InlineHTML is text outside <?php ... ?>, one token per line.
	InlineHTML
	// OpenTag represents '<?php', '<?=' or '<?' including trailing whitespace on the line.
	OpenTag
	// CloseTag represents '?>'.
	CloseTag
	// Whitespace is a run of blanks, ending at the first newline.
	Whitespace
	// Comment is a '//', '#' or '/* */' comment line.
	Comment
	// DocComment is a '/** */' comment line.
	DocComment
	// Variable represents '$name'.
	Variable
	// String is an identifier: a name that is not a keyword.
	String
	// Keyword is a reserved word such as 'return' or 'function'.
	Keyword
	// Number is an integer or floating point literal.
	Number
	// ConstantString is a single or double quoted string line.
	ConstantString
	// Heredoc is one line of a heredoc or nowdoc, including its delimiters.
	Heredoc
	// DoubleArrow represents '=>'.
	DoubleArrow
	// ObjectOperator represents '->' or '?->'.
	ObjectOperator
	// DoubleColon represents '::'.
	DoubleColon
	// OpenShortArray is a '[' that starts an array literal.
	OpenShortArray
	// CloseShortArray is the ']' closing an OpenShortArray.
	CloseShortArray
	// OpenSquareBracket is a '[' used for indexing.
	OpenSquareBracket
	// CloseSquareBracket is the ']' closing an OpenSquareBracket.
	CloseSquareBracket
	// Attribute represents '#['.
	Attribute
	// AttributeEnd is the ']' closing an Attribute.
	AttributeEnd
	// OpenParenthesis represents '('.
	OpenParenthesis
	// CloseParenthesis represents ')'.
	CloseParenthesis
	// OpenCurlyBracket represents '{' (also '${').
	OpenCurlyBracket
	// CloseCurlyBracket represents '}'.
	CloseCurlyBracket
	// Comma represents ','.
	Comma
	// Semicolon represents ';'.
	Semicolon
	// Operator is any other punctuation, matched longest first.
	Operator

	kindCount
)

var kindNames = [...]string{
	Invalid:            "T_INVALID",
	InlineHTML:         "T_INLINE_HTML",
	OpenTag:            "T_OPEN_TAG",
	CloseTag:           "T_CLOSE_TAG",
	Whitespace:         "T_WHITESPACE",
	Comment:            "T_COMMENT",
	DocComment:         "T_DOC_COMMENT",
	Variable:           "T_VARIABLE",
	String:             "T_STRING",
	Keyword:            "T_KEYWORD",
	Number:             "T_NUMBER",
	ConstantString:     "T_CONSTANT_ENCAPSED_STRING",
	Heredoc:            "T_HEREDOC",
	DoubleArrow:        "T_DOUBLE_ARROW",
	ObjectOperator:     "T_OBJECT_OPERATOR",
	DoubleColon:        "T_DOUBLE_COLON",
	OpenShortArray:     "T_OPEN_SHORT_ARRAY",
	CloseShortArray:    "T_CLOSE_SHORT_ARRAY",
	OpenSquareBracket:  "T_OPEN_SQUARE_BRACKET",
	CloseSquareBracket: "T_CLOSE_SQUARE_BRACKET",
	Attribute:          "T_ATTRIBUTE",
	AttributeEnd:       "T_ATTRIBUTE_END",
	OpenParenthesis:    "T_OPEN_PARENTHESIS",
	CloseParenthesis:   "T_CLOSE_PARENTHESIS",
	OpenCurlyBracket:   "T_OPEN_CURLY_BRACKET",
	CloseCurlyBracket:  "T_CLOSE_CURLY_BRACKET",
	Comma:              "T_COMMA",
	Semicolon:          "T_SEMICOLON",
	Operator:           "T_OPERATOR",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "T_UNKNOWN"
}

// IsOpener reports whether k opens a bracket pair.
func (k Kind) IsOpener() bool {
	switch k {
	case OpenShortArray, OpenSquareBracket, Attribute, OpenParenthesis, OpenCurlyBracket:
		return true
	default:
		return false
	}
}

// IsCloser reports whether k closes a bracket pair.
func (k Kind) IsCloser() bool {
	switch k {
	case CloseShortArray, CloseSquareBracket, AttributeEnd, CloseParenthesis, CloseCurlyBracket:
		return true
	default:
		return false
	}
}

// Empty lists the kinds that carry no code: whitespace and comments.
var Empty = []Kind{Whitespace, Comment, DocComment}

// IsEmpty reports whether k is whitespace or a comment.
func (k Kind) IsEmpty() bool {
	return k == Whitespace || k == Comment || k == DocComment
}
