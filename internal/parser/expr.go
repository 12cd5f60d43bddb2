package parser

import (
	"strconv"

	"github.com/joshuawills/xppc/internal/ast"
	"github.com/joshuawills/xppc/pkg/token"
)

// parseExpr parses a full expression, including an optional trailing
// `as Type` cast, which original_source/src/parser.cpp applies at the
// very top of the precedence chain rather than as a postfix operator.
// Like every production below, it captures start before consuming
// anything and merges in the last consumed token via finish once it is
// done, so a multi-token expression's Position spans the whole thing
// rather than just its leftmost token (parser.cpp:498-508).
func (p *Parser) parseExpr() ast.Expression {
	start := p.cur()
	e := p.parseAssignmentExpr()
	for p.peek(token.AS) {
		p.advance()
		target := p.parseType()
		e = ast.NewCastExpr(p.finish(start), e, target)
	}
	return e
}

func (p *Parser) isAssignmentOperator() bool {
	switch p.cur().Kind {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN:
		return true
	default:
		return false
	}
}

// parseAssignmentExpr is right-associative: `a = b = c` parses as
// `a = (b = c)`.
func (p *Parser) parseAssignmentExpr() ast.Expression {
	start := p.cur()
	lhs := p.parseLogicalOrExpr()
	if p.isAssignmentOperator() {
		op := p.advance().Kind
		rhs := p.parseAssignmentExpr()
		return ast.NewAssignmentExpr(p.finish(start), lhs, op, rhs)
	}
	return lhs
}

func (p *Parser) parseLogicalOrExpr() ast.Expression {
	start := p.cur()
	left := p.parseLogicalAndExpr()
	for p.peek(token.OR) {
		op := p.advance().Kind
		right := p.parseLogicalAndExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

func (p *Parser) parseLogicalAndExpr() ast.Expression {
	start := p.cur()
	left := p.parseEqualityExpr()
	for p.peek(token.AND) {
		op := p.advance().Kind
		right := p.parseEqualityExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

func (p *Parser) parseEqualityExpr() ast.Expression {
	start := p.cur()
	left := p.parseRelationalExpr()
	for p.peek(token.EQ) || p.peek(token.NEQ) {
		op := p.advance().Kind
		right := p.parseRelationalExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

func (p *Parser) parseRelationalExpr() ast.Expression {
	start := p.cur()
	left := p.parseAdditiveExpr()
	for p.peek(token.LT) || p.peek(token.LTE) || p.peek(token.GT) || p.peek(token.GTE) {
		op := p.advance().Kind
		right := p.parseAdditiveExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

func (p *Parser) parseAdditiveExpr() ast.Expression {
	start := p.cur()
	left := p.parseMultiplicativeExpr()
	for p.peek(token.PLUS) || p.peek(token.MINUS) {
		op := p.advance().Kind
		right := p.parseMultiplicativeExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicativeExpr() ast.Expression {
	start := p.cur()
	left := p.parseUnaryExpr()
	for p.peek(token.STAR) || p.peek(token.SLASH) || p.peek(token.PERCENT) {
		op := p.advance().Kind
		right := p.parseUnaryExpr()
		left = ast.NewBinaryExpr(p.finish(start), left, op, right)
	}
	return left
}

// parseUnaryExpr handles prefix operators and defers to
// parseArrayInitExpr when the next token opens a bracketed literal,
// matching original_source/src/parser.cpp's dispatch at the top of
// parse_unary_expr.
func (p *Parser) parseUnaryExpr() ast.Expression {
	start := p.cur()
	switch p.cur().Kind {
	case token.BANG, token.PLUS, token.MINUS, token.STAR, token.AMP, token.INCR, token.DECR:
		op := p.advance().Kind
		operand := p.parseUnaryExpr()
		return ast.NewUnaryExpr(p.finish(start), op, operand, false)
	case token.LBRACKET:
		return p.parseArrayInitExpr()
	default:
		return p.parsePostfixExpr()
	}
}

func (p *Parser) parseArrayInitExpr() ast.Expression {
	start := p.match(token.LBRACKET)
	var elems []ast.Expression
	for !p.peek(token.RBRACKET) && !p.peek(token.EOF) {
		elems = append(elems, p.parseExpr())
		if p.peek(token.RBRACKET) {
			break
		}
		p.match(token.COMMA)
	}
	p.match(token.RBRACKET)
	return ast.NewArrayInitExpr(p.finish(start), elems)
}

// parsePostfixExpr chains call, index, enum-access, field/method-access
// and postfix increment/decrement onto a primary expression, grounded
// on original_source/src/parser.cpp's parse_postfix_expr. start is
// captured once, before the primary expression, and reused for every
// link in the chain, so `a.b.c`'s FieldAccessExpr nodes each span from
// `a` through their own trailing field, not just their own `.ident`.
func (p *Parser) parsePostfixExpr() ast.Expression {
	start := p.cur()
	e := p.parsePrimaryExpr()
	for {
		switch {
		case p.peek(token.LPAREN):
			ve, ok := e.(*ast.VarExpr)
			if !ok {
				p.fail("only a plain name may be called")
			}
			p.advance()
			args := p.parseArgList()
			e = ast.NewCallExpr(p.finish(start), ve.Name, args)

		case p.tryConsume(token.LBRACKET):
			index := p.parseExpr()
			p.match(token.RBRACKET)
			e = ast.NewArrayIndexExpr(p.finish(start), e, index)

		case p.peek(token.COLONCOLON):
			ve, ok := e.(*ast.VarExpr)
			if !ok {
				p.fail("enum access requires an enum name on the left of '::'")
			}
			p.advance()
			field := p.parseIdent()
			e = ast.NewEnumAccessExpr(p.finish(start), ve.Name, field)

		case p.tryConsume(token.DOT):
			field := p.parseIdent()
			if p.peek(token.LPAREN) {
				p.advance()
				args := p.parseArgList()
				e = ast.NewMethodAccessExpr(p.finish(start), e, field, args)
			} else {
				e = ast.NewFieldAccessExpr(p.finish(start), e, field)
			}

		case p.peek(token.INCR) || p.peek(token.DECR):
			op := p.advance().Kind
			e = ast.NewUnaryExpr(p.finish(start), op, e, true)

		default:
			return e
		}
	}
}

// parsePrimaryExpr parses the leaves of an expression: identifiers,
// literals and parenthesized subexpressions, grounded on
// original_source/src/parser.cpp's parse_primary_expr. The char-literal
// length check there is reproduced by diagnostic #18 in the verifier
// instead (SPEC_FULL.md Supplemented Features), so it is not duplicated
// here.
func (p *Parser) parsePrimaryExpr() ast.Expression {
	start := p.cur()
	switch {
	case p.peek(token.IDENT):
		name := p.parseIdent()
		return ast.NewVarExpr(p.finish(start), name)

	case p.peek(token.INT):
		p.advance()
		v, err := strconv.ParseInt(start.Lexeme, 10, 64)
		if err != nil {
			p.fail("invalid integer literal " + start.Lexeme)
		}
		return ast.NewIntLit(p.finish(start), v)

	case p.peek(token.UINT):
		p.advance()
		v, err := strconv.ParseUint(start.Lexeme, 10, 64)
		if err != nil {
			p.fail("invalid unsigned integer literal " + start.Lexeme)
		}
		return ast.NewUIntLit(p.finish(start), v)

	case p.peek(token.FLOAT):
		p.advance()
		v, err := strconv.ParseFloat(start.Lexeme, 64)
		if err != nil {
			p.fail("invalid float literal " + start.Lexeme)
		}
		return ast.NewDecimalLit(p.finish(start), v)

	case p.peek(token.TRUE), p.peek(token.FALSE):
		p.advance()
		return ast.NewBoolLit(p.finish(start), start.Kind == token.TRUE)

	case p.peek(token.STRING):
		p.advance()
		return ast.NewStringLit(p.finish(start), start.Lexeme)

	case p.peek(token.CHAR):
		p.advance()
		return ast.NewCharLit(p.finish(start), start.Lexeme)

	case p.tryConsume(token.LPAREN):
		e := p.parseExpr()
		p.match(token.RPAREN)
		return e

	default:
		p.fail("unrecognized primary expression, received " + start.Kind.String())
		return nil
	}
}
