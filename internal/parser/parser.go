// Package parser implements XPP's recursive-descent parser: one method
// per production, a precedence-climbing expression parser, and
// class-body mode dispatch. Grounded on original_source/src/parser.cpp
// for the grammar, including its try_consume/match/peek cursor and its
// start(pos)/finish(pos) position-tracking pair (parser.cpp:10-24): every
// production captures its first token before consuming anything, then
// merges in the last token it actually consumed once it is done, so the
// constructed node's Position spans the whole production rather than
// just its first token. The Pratt-adjacent expression-parser structure
// follows the teacher's internal/parser package idiom.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// Parser holds the token stream and cursor position for one source file.
type Parser struct {
	file   string
	tokens []token.Token
	pos    int

	// last is the most recently consumed token, updated by advance; it
	// is what finish reads to extend a production's start position into
	// its full span.
	last token.Token
}

// New constructs a Parser over an already-lexed token stream (see
// internal/lexer.All), reporting positions against file.
func New(file string, tokens []token.Token) *Parser {
	return &Parser{file: file, tokens: tokens}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

// peekAt returns the token n positions ahead of the cursor (0 is cur()).
func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) peek(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	p.last = t
	return t
}

// finish merges start's own position with the end of the last token the
// parser has consumed since, returning a copy of start whose Position
// spans the whole production — the Go shape of the original's
// start(pos)/finish(pos) pair (parser.cpp:10-24): start is captured by
// the caller before consuming anything, finish is called once the
// production has consumed its last token.
func (p *Parser) finish(start token.Token) token.Token {
	start.Pos.LineEnd = p.last.Pos.LineEnd
	start.Pos.ColEnd = p.last.Pos.ColEnd
	return start
}

func (p *Parser) tryConsume(k token.Kind) bool {
	if p.peek(k) {
		p.advance()
		return true
	}
	return false
}

// match consumes a token of kind k or bails out of the parse with a
// SyntaxError, exactly where the original raises "\"%\" expected here".
func (p *Parser) match(k token.Kind) token.Token {
	if !p.peek(k) {
		p.fail(fmt.Sprintf("%q expected here, received %q", k.String(), p.cur().Kind.String()))
	}
	return p.advance()
}

func (p *Parser) fail(message string) {
	panic(bailout{&SyntaxError{File: p.file, Pos: p.cur().Pos, Message: message}})
}

func (p *Parser) parseIdent() string {
	if !p.peek(token.IDENT) {
		p.fail("identifier expected, received " + p.cur().Kind.String())
	}
	return p.advance().Lexeme
}

// parseType parses a type reference: a primitive or Murky name followed
// by either `[size?]` or one-or-more trailing `*`, never both.
func (p *Parser) parseType() types.Type {
	tok := p.cur()
	var base types.Type
	if token.IsPrimitiveTypeName(tok.Kind) {
		base = primitiveFor(tok.Kind)
		p.advance()
	} else if p.peek(token.IDENT) {
		base = &types.Murky{Name: tok.Lexeme}
		p.advance()
	} else {
		p.fail("type expected, received " + tok.Kind.String())
	}

	if p.tryConsume(token.LBRACKET) {
		if p.peek(token.INT) {
			n, err := strconv.Atoi(p.cur().Lexeme)
			if err != nil {
				p.fail("invalid array size " + p.cur().Lexeme)
			}
			p.advance()
			p.match(token.RBRACKET)
			return &types.Array{Inner: base, Length: &n}
		}
		p.match(token.RBRACKET)
		return &types.Array{Inner: base}
	}

	t := base
	for p.tryConsume(token.STAR) {
		t = &types.Pointer{Inner: t}
	}
	return t
}

func primitiveFor(k token.Kind) types.Type {
	switch k {
	case token.VOID:
		return types.VoidType
	case token.BOOL:
		return types.BoolType
	case token.I64:
		return types.I64Type
	case token.I8:
		return &types.Primitive{Spec: types.I8}
	case token.I32:
		return &types.Primitive{Spec: types.I32}
	case token.U8:
		return &types.Primitive{Spec: types.U8}
	case token.U32:
		return &types.Primitive{Spec: types.U32}
	case token.U64:
		return &types.Primitive{Spec: types.U64}
	case token.F32:
		return &types.Primitive{Spec: types.F32}
	case token.F64:
		return &types.Primitive{Spec: types.F64}
	default:
		return types.UnknownType
	}
}

// parseParaList parses `(mut? ident: Type, ...)`, tolerating an empty
// list and a trailing comma before the closing paren.
func (p *Parser) parseParaList() []*ast.ParaDecl {
	var paras []*ast.ParaDecl
	p.match(token.LPAREN)
	for !p.peek(token.RPAREN) && !p.peek(token.EOF) {
		start := p.cur()
		isMut := p.tryConsume(token.MUT)
		ident := p.parseIdent()
		p.match(token.COLON)
		t := p.parseType()
		paras = append(paras, &ast.ParaDecl{DeclBase: ast.DeclBase{Tok: p.finish(start), Ident: ident, Type: t, IsMut: isMut}})
		if p.peek(token.RPAREN) {
			break
		}
		p.match(token.COMMA)
	}
	p.match(token.RPAREN)
	return paras
}

func (p *Parser) parseTypeList() ([]types.Type, bool) {
	var list []types.Type
	variadic := false
	p.match(token.LPAREN)
	for !p.peek(token.RPAREN) && !p.peek(token.EOF) {
		if p.tryConsume(token.ELLIPSIS) {
			variadic = true
			list = append(list, types.VariadicType)
		} else {
			list = append(list, p.parseType())
		}
		if p.peek(token.RPAREN) {
			break
		}
		p.match(token.COMMA)
	}
	p.match(token.RPAREN)
	return list, variadic
}

func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	for !p.peek(token.RPAREN) && !p.peek(token.EOF) {
		args = append(args, p.parseExpr())
		if p.peek(token.RPAREN) {
			break
		}
		p.match(token.COMMA)
	}
	p.match(token.RPAREN)
	return args
}

func (p *Parser) parseEnumList() []string {
	var fields []string
	p.match(token.LBRACE)
	for !p.peek(token.RBRACE) && !p.peek(token.EOF) {
		fields = append(fields, p.parseIdent())
		if p.peek(token.RBRACE) {
			break
		}
		p.match(token.COMMA)
	}
	p.match(token.RBRACE)
	return fields
}

// Parse consumes the whole token stream and returns the resulting
// Module, or a SyntaxError if the grammar was violated anywhere.
func (p *Parser) Parse() (m *ast.Module, err *SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			err = b.err
		}
	}()

	module := &ast.Module{FilePath: p.file}
	for !p.peek(token.EOF) {
		p.parseTopLevelDecl(module)
	}
	return module, nil
}

func (p *Parser) parseTopLevelDecl(m *ast.Module) {
	start := p.cur()
	isPub := p.tryConsume(token.PUB)

	switch {
	case p.tryConsume(token.FN):
		ident := p.parseIdent()
		params := p.parseParaList()
		ret := p.parseType()
		body := p.parseCompoundStmt()
		f := &ast.Function{Tok: p.finish(start), Ident: ident, Params: params, ReturnType: ret, Body: body, IsPub: isPub}
		m.Functions = append(m.Functions, f)

	case p.tryConsume(token.EXTERN):
		ident := p.parseIdent()
		types_, variadic := p.parseTypeList()
		ret := p.parseType()
		p.match(token.SEMICOLON)
		e := &ast.Extern{Tok: p.finish(start), Ident: ident, ReturnType: ret, ParamTypes: types_, IsVariadic: variadic, IsPub: isPub}
		m.Externs = append(m.Externs, e)

	case p.tryConsume(token.ENUM):
		ident := p.parseIdent()
		fields := p.parseEnumList()
		en := &ast.EnumDecl{Tok: p.finish(start), Ident: ident, Fields: fields, IsPub: isPub}
		m.Enums = append(m.Enums, en)

	case p.tryConsume(token.LET):
		isMut := p.tryConsume(token.MUT)
		ident := p.parseIdent()
		declaredType := types.UnknownType
		if p.tryConsume(token.COLON) {
			declaredType = p.parseType()
		}
		var init ast.Expression
		if p.tryConsume(token.ASSIGN) {
			init = p.parseExpr()
		}
		p.match(token.SEMICOLON)
		g := &ast.GlobalVarDecl{
			DeclBase: ast.DeclBase{Tok: p.finish(start), Ident: ident, Type: declaredType, IsMut: isMut, IsPub: isPub},
			Init:     init,
		}
		m.Globals = append(m.Globals, g)

	case p.tryConsume(token.CLASS):
		c := p.parseClass(start)
		c.IsPub = isPub
		m.Classes = append(m.Classes, c)

	default:
		p.fail("expected a type declaration, function declaration or global variable declaration, received " +
			strings.TrimSpace(p.cur().Kind.String()))
	}
}
