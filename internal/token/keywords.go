package token

import "strings"

var keywords = map[string]struct{}{
	"abstract": {}, "and": {}, "as": {}, "break": {}, "callable": {},
	"case": {}, "catch": {}, "class": {}, "clone": {}, "const": {},
	"continue": {}, "declare": {}, "default": {}, "do": {}, "echo": {},
	"else": {}, "elseif": {}, "empty": {}, "enddeclare": {}, "endfor": {},
	"endforeach": {}, "endif": {}, "endswitch": {}, "endwhile": {}, "extends": {},
	"final": {}, "finally": {}, "fn": {}, "for": {}, "foreach": {},
	"function": {}, "global": {}, "goto": {}, "if": {}, "implements": {},
	"include": {}, "include_once": {}, "instanceof": {}, "insteadof": {}, "interface": {},
	"isset": {}, "list": {}, "match": {}, "namespace": {}, "new": {},
	"or": {}, "print": {}, "private": {}, "protected": {}, "public": {},
	"readonly": {}, "require": {}, "require_once": {}, "return": {}, "static": {},
	"switch": {}, "throw": {}, "trait": {}, "try": {}, "unset": {},
	"use": {}, "var": {}, "while": {}, "xor": {}, "yield": {},
}

// IsKeyword reports whether ident is a reserved PHP word.
// PHP keywords are case-insensitive.
func IsKeyword(ident string) bool {
	_, ok := keywords[strings.ToLower(ident)]
	return ok
}
