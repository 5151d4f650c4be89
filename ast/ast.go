package ast

type Program struct {
	Lines []Line
}

// Line pairs a statement with its position in parse order. Index counts
// from zero and has nothing to do with any numeric label in the source.
type Line struct {
	Index int
	Stmt  Statement
}

type ForLoop struct {
	Var   string
	Start Expr
	End   Expr
	Step  Expr
}

type Statement interface {
	isStatement()
}

type LetStmt struct {
	Var  string
	Expr Expr
}

func (LetStmt) isStatement() {}

type PrintStmt struct {
	Exprs     []Expr
	Semicolon bool
}

func (PrintStmt) isStatement() {}

// IfStmt holds exactly one statement per branch. Else is nil when absent.
type IfStmt struct {
	Cond Expr
	Then Statement
	Else Statement
}

func (IfStmt) isStatement() {}

type InputStmt struct {
	Var string
}

func (InputStmt) isStatement() {}

type ForStmt struct {
	Loop ForLoop
}

func (ForStmt) isStatement() {}

type NextStmt struct {
	Var string
}

func (NextStmt) isStatement() {}

type EndStmt struct{}

func (EndStmt) isStatement() {}

// GotoStmt and RemStmt are part of the statement set but the parser never
// builds them; both back ends reject them.
type GotoStmt struct {
	Target uint32
}

func (GotoStmt) isStatement() {}

type RemStmt struct {
	Text string
}

func (RemStmt) isStatement() {}

type Expr interface {
	isExpr()
}

type NumberLit struct {
	Value float64
}

func (NumberLit) isExpr() {}

type StringLit struct {
	Value string
}

func (StringLit) isExpr() {}

type VarRef struct {
	Name string
}

func (VarRef) isExpr() {}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

type CallExpr struct {
	Name string
	Args []Expr
}

func (CallExpr) isExpr() {}
