package ast

import (
	"fmt"
	"strings"
)

// Print renders a Module as an indented tree, one node per line, each
// annotated with its position — grounded on the teacher's
// cmd/dwscript/cmd/parse.go dumpASTNode switch, generalized from
// DWScript's node catalog to XPP's.
func Print(m *Module) string {
	var b strings.Builder
	for _, e := range m.Enums {
		printNode(&b, e, 0)
	}
	for _, c := range m.Classes {
		printNode(&b, c, 0)
	}
	for _, ex := range m.Externs {
		printNode(&b, ex, 0)
	}
	for _, g := range m.Globals {
		printNode(&b, g, 0)
	}
	for _, f := range m.Functions {
		printNode(&b, f, 0)
	}
	return b.String()
}

func line(b *strings.Builder, indent int, format string, args ...any) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(fmt.Sprintf(format, args...))
	b.WriteString("\n")
}

func printNode(b *strings.Builder, n Node, indent int) {
	switch v := n.(type) {
	case *Function:
		line(b, indent, "Function %s -> %s @%s", v.Ident, v.ReturnType, v.Pos())
		for _, p := range v.Params {
			printNode(b, p, indent+1)
		}
		printNode(b, v.Body, indent+1)
	case *Extern:
		line(b, indent, "Extern %s -> %s @%s", v.Ident, v.ReturnType, v.Pos())
	case *EnumDecl:
		line(b, indent, "EnumDecl %s {%s} @%s", v.Ident, strings.Join(v.Fields, ", "), v.Pos())
	case *ClassDecl:
		line(b, indent, "ClassDecl %s @%s", v.Ident, v.Pos())
		for _, f := range v.Fields {
			printNode(b, f, indent+1)
		}
		for _, ctor := range v.Constructors {
			printNode(b, ctor, indent+1)
		}
		for _, dtor := range v.Destructors {
			printNode(b, dtor, indent+1)
		}
		for _, m := range v.Methods {
			printNode(b, m, indent+1)
		}
	case *ClassFieldDecl:
		line(b, indent, "ClassFieldDecl %s: %s @%s", v.Ident, v.Type, v.Pos())
	case *MethodDecl:
		line(b, indent, "MethodDecl %s -> %s @%s", v.Ident, v.ReturnType, v.Pos())
		printNode(b, v.Body, indent+1)
	case *ConstructorDecl:
		line(b, indent, "ConstructorDecl @%s", v.Pos())
		printNode(b, v.Body, indent+1)
	case *DestructorDecl:
		line(b, indent, "DestructorDecl @%s", v.Pos())
		printNode(b, v.Body, indent+1)
	case *GlobalVarDecl:
		line(b, indent, "GlobalVarDecl %s: %s @%s", v.Ident, v.Type, v.Pos())
		if v.Init != nil {
			printNode(b, v.Init, indent+1)
		}
	case *ParaDecl:
		line(b, indent, "ParaDecl %s: %s @%s", v.Ident, v.Type, v.Pos())
	case *CompoundStmt:
		line(b, indent, "CompoundStmt @%s", v.Pos())
		for _, s := range v.Statements {
			printNode(b, s, indent+1)
		}
	case *LocalVarStmt:
		line(b, indent, "LocalVarStmt %s: %s @%s", v.Decl.Ident, v.Decl.Type, v.Pos())
		if v.Decl.Init != nil {
			printNode(b, v.Decl.Init, indent+1)
		}
	case *ReturnStmt:
		line(b, indent, "ReturnStmt @%s", v.Pos())
		if v.Expr != nil {
			printNode(b, v.Expr, indent+1)
		}
	case *ExprStmt:
		line(b, indent, "ExprStmt @%s", v.Pos())
		printNode(b, v.Expr, indent+1)
	case *WhileStmt:
		line(b, indent, "WhileStmt @%s", v.Pos())
		printNode(b, v.Cond, indent+1)
		printNode(b, v.Body, indent+1)
	case *IfStmt:
		line(b, indent, "IfStmt @%s", v.Pos())
		printNode(b, v.Cond, indent+1)
		printNode(b, v.Then, indent+1)
		for _, ei := range v.ElseIf {
			printNode(b, ei, indent+1)
		}
		if v.Else != nil {
			printNode(b, v.Else, indent+1)
		}
	case *ElseIfStmt:
		line(b, indent, "ElseIfStmt @%s", v.Pos())
		printNode(b, v.Cond, indent+1)
		printNode(b, v.Body, indent+1)
	case *EmptyStmt:
		line(b, indent, "EmptyStmt @%s", v.Pos())
	case *AssignmentExpr:
		line(b, indent, "AssignmentExpr %s @%s", v.Op, v.Pos())
		printNode(b, v.Lhs, indent+1)
		printNode(b, v.Rhs, indent+1)
	case *BinaryExpr:
		line(b, indent, "BinaryExpr %s : %s @%s", v.Op, v.GetType(), v.Pos())
		printNode(b, v.Left, indent+1)
		printNode(b, v.Right, indent+1)
	case *UnaryExpr:
		line(b, indent, "UnaryExpr %s postfix=%v : %s @%s", v.Op, v.Postfix, v.GetType(), v.Pos())
		printNode(b, v.Operand, indent+1)
	case *IntLit:
		line(b, indent, "IntLit %d @%s", v.Value, v.Pos())
	case *UIntLit:
		line(b, indent, "UIntLit %d @%s", v.Value, v.Pos())
	case *DecimalLit:
		line(b, indent, "DecimalLit %g @%s", v.Value, v.Pos())
	case *BoolLit:
		line(b, indent, "BoolLit %v @%s", v.Value, v.Pos())
	case *CharLit:
		line(b, indent, "CharLit '%s' @%s", v.Raw, v.Pos())
	case *StringLit:
		line(b, indent, "StringLit %q @%s", v.Value, v.Pos())
	case *VarExpr:
		line(b, indent, "VarExpr %s : %s @%s", v.Name, v.GetType(), v.Pos())
	case *CallExpr:
		line(b, indent, "CallExpr %s @%s", v.Name, v.Pos())
		for _, a := range v.Args {
			printNode(b, a, indent+1)
		}
	case *CastExpr:
		line(b, indent, "CastExpr -> %s @%s", v.TargetType, v.Pos())
		printNode(b, v.Expr, indent+1)
	case *ArrayInitExpr:
		line(b, indent, "ArrayInitExpr @%s", v.Pos())
		for _, e := range v.Elements {
			printNode(b, e, indent+1)
		}
	case *ArrayIndexExpr:
		line(b, indent, "ArrayIndexExpr @%s", v.Pos())
		printNode(b, v.Base, indent+1)
		printNode(b, v.Index, indent+1)
	case *EnumAccessExpr:
		line(b, indent, "EnumAccessExpr %s::%s @%s", v.EnumName, v.Field, v.Pos())
	case *FieldAccessExpr:
		line(b, indent, "FieldAccessExpr .%s @%s", v.Field, v.Pos())
		printNode(b, v.Base, indent+1)
	case *MethodAccessExpr:
		line(b, indent, "MethodAccessExpr .%s @%s", v.Method, v.Pos())
		printNode(b, v.Base, indent+1)
		for _, a := range v.Args {
			printNode(b, a, indent+1)
		}
	case *EmptyExpr:
		line(b, indent, "EmptyExpr @%s", v.Pos())
	default:
		line(b, indent, "<unknown node %T> @%s", v, n.Pos())
	}
}
