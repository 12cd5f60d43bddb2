package ast

// Visitor is the double-dispatch contract every AST node's Accept method
// calls into, one method per concrete node type (spec.md §6 "Back-end
// interface" and original_source/src/visitor.hpp). Each method returns
// `any` rather than a fixed type: the Verifier's expression visits return
// a types.Type, its statement visits and most declaration visits return
// nil (VisitParaDecl, VisitGlobalVarDecl and VisitClassFieldDecl return
// the declared type), and a
// back-end code generator is free to return whatever its own IR values
// are. Callers that know the concrete node type being visited assert the
// return value to the type they expect.
type Visitor interface {
	VisitParaDecl(*ParaDecl) any
	VisitLocalVarDecl(*LocalVarDecl) any
	VisitGlobalVarDecl(*GlobalVarDecl) any
	VisitFunction(*Function) any
	VisitExtern(*Extern) any
	VisitEnumDecl(*EnumDecl) any
	VisitClassDecl(*ClassDecl) any
	VisitClassFieldDecl(*ClassFieldDecl) any
	VisitMethodDecl(*MethodDecl) any
	VisitConstructorDecl(*ConstructorDecl) any
	VisitDestructorDecl(*DestructorDecl) any

	VisitEmptyStmt(*EmptyStmt) any
	VisitCompoundStmt(*CompoundStmt) any
	VisitLocalVarStmt(*LocalVarStmt) any
	VisitReturnStmt(*ReturnStmt) any
	VisitExprStmt(*ExprStmt) any
	VisitWhileStmt(*WhileStmt) any
	VisitIfStmt(*IfStmt) any
	VisitElseIfStmt(*ElseIfStmt) any

	VisitEmptyExpr(*EmptyExpr) any
	VisitAssignmentExpr(*AssignmentExpr) any
	VisitBinaryExpr(*BinaryExpr) any
	VisitUnaryExpr(*UnaryExpr) any
	VisitIntLit(*IntLit) any
	VisitUIntLit(*UIntLit) any
	VisitDecimalLit(*DecimalLit) any
	VisitBoolLit(*BoolLit) any
	VisitCharLit(*CharLit) any
	VisitStringLit(*StringLit) any
	VisitVarExpr(*VarExpr) any
	VisitCallExpr(*CallExpr) any
	VisitCastExpr(*CastExpr) any
	VisitArrayInitExpr(*ArrayInitExpr) any
	VisitArrayIndexExpr(*ArrayIndexExpr) any
	VisitEnumAccessExpr(*EnumAccessExpr) any
	VisitFieldAccessExpr(*FieldAccessExpr) any
	VisitMethodAccessExpr(*MethodAccessExpr) any
}
