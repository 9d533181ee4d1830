package ir

// Block is an ordered statement list.
type Block struct {
	Statements []Stmt
}

// Stmt is a lowered statement.
type Stmt interface {
	stmtNode()
}

// Return leaves the function; Value is nil for a bare return.
type Return struct {
	Value Expr
}

// Local binds a function-local name.
type Local struct {
	Name  string
	Type  Type
	Value Expr
}

// ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	Expr Expr
}

func (*Return) stmtNode()   {}
func (*Local) stmtNode()    {}
func (*ExprStmt) stmtNode() {}

// Expr is a lowered expression.
type Expr interface {
	exprNode()
}

type IntLit struct{ Value int64 }

type FloatLit struct{ Value float64 }

type BoolLit struct{ Value bool }

type StringLit struct{ Value string }

type ListLit struct{ Elements []Expr }

// RefKind tells where a name was resolved.
type RefKind int

const (
	LocalRef  RefKind = iota // Parameter or local variable
	GlobalRef                // Pre-registered function or variable
)

// Ref reads a name.
type Ref struct {
	Name string
	Kind RefKind
}

// FuncRef names a function owned by a type, e.g. Foo::new.
type FuncRef struct {
	Owner string
	Name  string
}

// Call applies Callee to Args. Method calls carry the receiver as Args[0].
type Call struct {
	Callee Expr
	Args   []Expr
}

// Member reads a field, or names a method whose owner was not known
// statically; the backend resolves it against the receiver.
type Member struct {
	Receiver Expr
	Name     string
}

// FieldValue is one initializer of a Construct.
type FieldValue struct {
	Name  string
	Value Expr
}

// Construct builds a value of a user type.
type Construct struct {
	Type   string
	Fields []FieldValue
}

// Binary is an infix operation.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*IntLit) exprNode()    {}
func (*FloatLit) exprNode()  {}
func (*BoolLit) exprNode()   {}
func (*StringLit) exprNode() {}
func (*ListLit) exprNode()   {}
func (*Ref) exprNode()       {}
func (*FuncRef) exprNode()   {}
func (*Call) exprNode()      {}
func (*Member) exprNode()    {}
func (*Construct) exprNode() {}
func (*Binary) exprNode()    {}
