package parser

import (
	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/pkg/token"
)

// parseClass mode-dispatches inside the class body: an identifier equal
// to the class name followed by `(` is a constructor, `!ident` is a
// destructor (supplementing the original, which dropped destructors
// entirely when assembling ClassDecl — see DESIGN.md decisions 4 and 15),
// `fn ident` is a method, and any other `ident: type` is a field.
func (p *Parser) parseClass(start token.Token) *ast.ClassDecl {
	className := p.parseIdent()
	c := &ast.ClassDecl{Ident: className}

	p.match(token.LBRACE)
	for !p.peek(token.RBRACE) && !p.peek(token.EOF) {
		memberStart := p.cur()
		isPub := p.tryConsume(token.PUB)
		isMut := p.tryConsume(token.MUT)

		switch {
		case p.tryConsume(token.BANG):
			p.parseIdent() // repeats the class name by convention; not re-checked
			params := p.parseParaList()
			body := p.parseCompoundStmt()
			c.Destructors = append(c.Destructors, &ast.DestructorDecl{Tok: p.finish(memberStart), Body: body})
			_ = params // destructors take no parameters per grammar; parsed defensively

		case p.tryConsume(token.FN):
			ident := p.parseIdent()
			params := p.parseParaList()
			ret := p.parseType()
			body := p.parseCompoundStmt()
			m := &ast.MethodDecl{Tok: p.finish(memberStart), Ident: ident, Params: params, ReturnType: ret, Body: body, IsPub: isPub, IsMut: isMut}
			c.Methods = append(c.Methods, m)

		case p.peek(token.IDENT) && p.cur().Lexeme == className:
			p.advance()
			params := p.parseParaList()
			body := p.parseCompoundStmt()
			ctor := &ast.ConstructorDecl{Tok: p.finish(memberStart), Params: params, Body: body}
			c.Constructors = append(c.Constructors, ctor)

		case p.peek(token.IDENT):
			ident := p.parseIdent()
			p.match(token.COLON)
			t := p.parseType()
			p.match(token.SEMICOLON)
			c.Fields = append(c.Fields, &ast.ClassFieldDecl{Tok: p.finish(memberStart), Ident: ident, Type: t, IsMut: isMut, IsPub: isPub})

		default:
			p.fail("expected a field, method, constructor or destructor inside class " + className)
		}
	}
	p.match(token.RBRACE)
	c.Tok = p.finish(start)
	return c
}
