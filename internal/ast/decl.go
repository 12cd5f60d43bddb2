package ast

import (
	"bytes"
	"strings"

	"github.com/joshuawills/xppc/internal/types"
	"github.com/joshuawills/xppc/pkg/token"
)

// DeclBase carries the fields every declaration in spec.md §3 shares:
// identifier, declared type, mutability/visibility flags, usage tracking,
// and the statement/depth indices used to mangle nested names.
type DeclBase struct {
	Tok           token.Token
	Ident         string
	Type          types.Type
	IsMut         bool
	IsPub         bool
	IsUsed        bool
	IsReassigned  bool
	StmtNum       int
	DepthNum      int
}

func (d *DeclBase) TokenLiteral() string   { return d.Tok.Lexeme }
func (d *DeclBase) Pos() token.Position    { return d.Tok.Pos }
func (d *DeclBase) DeclIdent() string      { return d.Ident }
func (d *DeclBase) DeclType() types.Type   { return d.Type }
func (d *DeclBase) MarkUsed()              { d.IsUsed = true }
func (d *DeclBase) MarkReassigned()        { d.IsReassigned = true }
func (d *DeclBase) declNode()              {}

// ParaDecl is a function or method parameter.
type ParaDecl struct {
	DeclBase
}

func (p *ParaDecl) String() string { return p.Ident + ": " + p.Type.String() }
func (p *ParaDecl) Accept(v Visitor) any { return v.VisitParaDecl(p) }

// LocalVarDecl is a `let` declaration inside a function body. Type may be
// types.UnknownType when the declaration has no annotation, in which case
// it is inferred from Init during verification.
type LocalVarDecl struct {
	DeclBase
	Init Expression
}

func (l *LocalVarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	if l.IsMut {
		out.WriteString("mut ")
	}
	out.WriteString(l.Ident)
	out.WriteString(": ")
	out.WriteString(l.Type.String())
	if l.Init != nil {
		out.WriteString(" = ")
		out.WriteString(l.Init.String())
	}
	out.WriteString(";")
	return out.String()
}
func (l *LocalVarDecl) Accept(v Visitor) any { return v.VisitLocalVarDecl(l) }

// GlobalVarDecl is a module-level `let` declaration.
type GlobalVarDecl struct {
	DeclBase
	Init Expression
}

func (g *GlobalVarDecl) String() string {
	var out bytes.Buffer
	if g.IsPub {
		out.WriteString("pub ")
	}
	out.WriteString("let ")
	if g.IsMut {
		out.WriteString("mut ")
	}
	out.WriteString(g.Ident)
	out.WriteString(": ")
	out.WriteString(g.Type.String())
	if g.Init != nil {
		out.WriteString(" = ")
		out.WriteString(g.Init.String())
	}
	out.WriteString(";")
	return out.String()
}
func (g *GlobalVarDecl) Accept(v Visitor) any { return v.VisitGlobalVarDecl(g) }

// Function is a top-level function declaration.
type Function struct {
	Tok        token.Token
	Ident      string
	Params     []*ParaDecl
	ReturnType types.Type
	Body       *CompoundStmt
	IsPub      bool
	IsUsed     bool
}

func (f *Function) TokenLiteral() string { return f.Tok.Lexeme }
func (f *Function) Pos() token.Position  { return f.Tok.Pos }
func (f *Function) declNode()            {}
func (f *Function) String() string {
	var out bytes.Buffer
	if f.IsPub {
		out.WriteString("pub ")
	}
	out.WriteString("fn ")
	out.WriteString(f.Ident)
	out.WriteString("(")
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(f.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(f.Body.String())
	return out.String()
}
func (f *Function) Accept(v Visitor) any { return v.VisitFunction(f) }

// ParamTypes returns the strict parameter-type sequence used for
// duplicate-function detection (spec.md §3 invariant 5).
func (f *Function) ParamTypes() []types.Type {
	ts := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		ts[i] = p.Type
	}
	return ts
}

// Extern declares a foreign function implemented outside the module.
type Extern struct {
	Tok         token.Token
	Ident       string
	ReturnType  types.Type
	ParamTypes  []types.Type
	IsVariadic  bool
	IsPub       bool
	IsUsed      bool
}

func (e *Extern) TokenLiteral() string { return e.Tok.Lexeme }
func (e *Extern) Pos() token.Position  { return e.Tok.Pos }
func (e *Extern) declNode()            {}
func (e *Extern) String() string {
	var out bytes.Buffer
	out.WriteString("extern ")
	out.WriteString(e.Ident)
	out.WriteString("(")
	names := make([]string, len(e.ParamTypes))
	for i, t := range e.ParamTypes {
		names[i] = t.String()
	}
	if e.IsVariadic {
		names = append(names, "...")
	}
	out.WriteString(strings.Join(names, ", "))
	out.WriteString(") ")
	out.WriteString(e.ReturnType.String())
	out.WriteString(";")
	return out.String()
}
func (e *Extern) Accept(v Visitor) any { return v.VisitExtern(e) }

// EnumDecl declares a named enumeration of fields.
type EnumDecl struct {
	Tok    token.Token
	Ident  string
	Fields []string
	IsPub  bool
	IsUsed bool
}

func (e *EnumDecl) TokenLiteral() string { return e.Tok.Lexeme }
func (e *EnumDecl) Pos() token.Position  { return e.Tok.Pos }
func (e *EnumDecl) declNode()            {}
func (e *EnumDecl) EnumName() string     { return e.Ident } // satisfies types.EnumRef
func (e *EnumDecl) String() string {
	return "enum " + e.Ident + " { " + strings.Join(e.Fields, ", ") + " }"
}
func (e *EnumDecl) Accept(v Visitor) any { return v.VisitEnumDecl(e) }

// ClassFieldDecl is a data member of a class.
type ClassFieldDecl struct {
	Tok   token.Token
	Ident string
	Type  types.Type
	IsMut bool
	IsPub bool
}

func (c *ClassFieldDecl) TokenLiteral() string { return c.Tok.Lexeme }
func (c *ClassFieldDecl) Pos() token.Position  { return c.Tok.Pos }
func (c *ClassFieldDecl) declNode()            {}
func (c *ClassFieldDecl) String() string       { return c.Ident + ": " + c.Type.String() + ";" }
func (c *ClassFieldDecl) Accept(v Visitor) any { return v.VisitClassFieldDecl(c) }

// MethodDecl is a function member of a class.
type MethodDecl struct {
	Tok        token.Token
	Ident      string
	Params     []*ParaDecl
	ReturnType types.Type
	Body       *CompoundStmt
	IsPub      bool
	IsMut      bool
}

func (m *MethodDecl) TokenLiteral() string { return m.Tok.Lexeme }
func (m *MethodDecl) Pos() token.Position  { return m.Tok.Pos }
func (m *MethodDecl) declNode()            {}
func (m *MethodDecl) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}
	return "fn " + m.Ident + "(" + strings.Join(params, ", ") + ") " + m.ReturnType.String() + " " + m.Body.String()
}
func (m *MethodDecl) Accept(v Visitor) any { return v.VisitMethodDecl(m) }

// ConstructorDecl builds an instance of the enclosing class.
type ConstructorDecl struct {
	Tok    token.Token
	Params []*ParaDecl
	Body   *CompoundStmt
}

func (c *ConstructorDecl) TokenLiteral() string { return c.Tok.Lexeme }
func (c *ConstructorDecl) Pos() token.Position  { return c.Tok.Pos }
func (c *ConstructorDecl) declNode()            {}
func (c *ConstructorDecl) String() string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = p.String()
	}
	return c.Tok.Lexeme + "(" + strings.Join(params, ", ") + ") " + c.Body.String()
}
func (c *ConstructorDecl) Accept(v Visitor) any { return v.VisitConstructorDecl(c) }

// DestructorDecl tears down an instance of the enclosing class. The
// original parser dropped destructors when assembling ClassDecl (spec.md
// §9 Open Questions); XPPC threads them through correctly (see
// ClassDecl.Destructors).
type DestructorDecl struct {
	Tok  token.Token
	Body *CompoundStmt
}

func (d *DestructorDecl) TokenLiteral() string { return d.Tok.Lexeme }
func (d *DestructorDecl) Pos() token.Position  { return d.Tok.Pos }
func (d *DestructorDecl) declNode()            {}
func (d *DestructorDecl) String() string       { return "!() " + d.Body.String() }
func (d *DestructorDecl) Accept(v Visitor) any { return v.VisitDestructorDecl(d) }

// ClassDecl declares a class's fields, methods, constructors, and
// destructors.
type ClassDecl struct {
	Tok          token.Token
	Ident        string
	Fields       []*ClassFieldDecl
	Methods      []*MethodDecl
	Constructors []*ConstructorDecl
	Destructors  []*DestructorDecl
	IsPub        bool
}

func (c *ClassDecl) TokenLiteral() string { return c.Tok.Lexeme }
func (c *ClassDecl) Pos() token.Position  { return c.Tok.Pos }
func (c *ClassDecl) declNode()            {}
func (c *ClassDecl) ClassName() string    { return c.Ident } // satisfies types.ClassRef
func (c *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class " + c.Ident + " {\n")
	for _, f := range c.Fields {
		out.WriteString("  " + f.String() + "\n")
	}
	for _, ctor := range c.Constructors {
		out.WriteString("  " + ctor.String() + "\n")
	}
	for _, dtor := range c.Destructors {
		out.WriteString("  " + dtor.String() + "\n")
	}
	for _, m := range c.Methods {
		out.WriteString("  " + m.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}
func (c *ClassDecl) Accept(v Visitor) any { return v.VisitClassDecl(c) }
