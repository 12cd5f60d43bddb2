package parser

import "github.com/joshuawills/xppc/pkg/token"

// SyntaxError is returned by Parse when a token doesn't match what the
// grammar expects at that point. Unlike the original implementation,
// which calls exit() the moment a match fails, Parse bails out of the
// recursive descent with a panic/recover pair (the same trick go/parser
// uses) and hands the caller a normal value instead of terminating the
// process — callers decide what exit code, if any, that becomes.
type SyntaxError struct {
	File    string
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return e.File + ":" + e.Pos.String() + ": " + e.Message
}

// bailout is the panic payload used to unwind out of the parser on the
// first syntax error.
type bailout struct{ err *SyntaxError }
