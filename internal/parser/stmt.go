package parser

import (
	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// parseCompoundStmt parses a brace-delimited statement list. Every
// statement form that opens its own nested block (if/while) recurses
// back into this method for its body, which is what lets the verifier
// open a fresh SymbolTable scope per call (internal/semantic.VisitCompoundStmt).
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	start := p.match(token.LBRACE)
	var stmts []ast.Statement
	for !p.peek(token.RBRACE) && !p.peek(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	p.match(token.RBRACE)
	return &ast.CompoundStmt{Tok: p.finish(start), Statements: stmts}
}

func (p *Parser) parseStmt() ast.Statement {
	start := p.cur()
	switch {
	case p.tryConsume(token.SEMICOLON):
		return &ast.EmptyStmt{Tok: p.finish(start)}
	case p.tryConsume(token.LET):
		return p.parseLocalVarStmt(start)
	case p.tryConsume(token.RETURN):
		return p.parseReturnStmt(start)
	case p.tryConsume(token.WHILE):
		return p.parseWhileStmt(start)
	case p.tryConsume(token.IF):
		return p.parseIfStmt(start)
	case p.peek(token.LBRACE):
		return p.parseCompoundStmt()
	default:
		return p.parseExprStmt(start)
	}
}

func (p *Parser) parseLocalVarStmt(start token.Token) *ast.LocalVarStmt {
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
	decl := &ast.LocalVarDecl{
		DeclBase: ast.DeclBase{Tok: p.finish(start), Ident: ident, Type: declaredType, IsMut: isMut},
		Init:     init,
	}
	return &ast.LocalVarStmt{Decl: decl}
}

func (p *Parser) parseReturnStmt(start token.Token) *ast.ReturnStmt {
	if p.tryConsume(token.SEMICOLON) {
		return &ast.ReturnStmt{Tok: p.finish(start)}
	}
	expr := p.parseExpr()
	p.match(token.SEMICOLON)
	return &ast.ReturnStmt{Tok: p.finish(start), Expr: expr}
}

func (p *Parser) parseWhileStmt(start token.Token) *ast.WhileStmt {
	cond := p.parseExpr()
	body := p.parseCompoundStmt()
	return &ast.WhileStmt{Tok: p.finish(start), Cond: cond, Body: body}
}

func (p *Parser) parseIfStmt(start token.Token) *ast.IfStmt {
	cond := p.parseExpr()
	then := p.parseCompoundStmt()

	var elseIfs []*ast.ElseIfStmt
	for p.peek(token.ELSE_IF) {
		eiStart := p.advance()
		elseIfs = append(elseIfs, p.parseElseIfArm(eiStart))
	}

	var elseBody *ast.CompoundStmt
	if p.tryConsume(token.ELSE) {
		elseBody = p.parseCompoundStmt()
	}

	return &ast.IfStmt{Tok: p.finish(start), Cond: cond, Then: then, ElseIf: elseIfs, Else: elseBody}
}

func (p *Parser) parseElseIfArm(start token.Token) *ast.ElseIfStmt {
	cond := p.parseExpr()
	body := p.parseCompoundStmt()
	return &ast.ElseIfStmt{Tok: p.finish(start), Cond: cond, Body: body}
}

func (p *Parser) parseExprStmt(start token.Token) *ast.ExprStmt {
	expr := p.parseExpr()
	p.match(token.SEMICOLON)
	return &ast.ExprStmt{Tok: p.finish(start), Expr: expr}
}
