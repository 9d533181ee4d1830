package ast

// Constructors for hand-built trees. Positions are left zero.

func NewIdent(name string) *Identifier { return &Identifier{Value: name} }

func NewInt(v int64) *IntegerLiteral { return &IntegerLiteral{Value: v} }

func NewFloat(v float64) *FloatLiteral { return &FloatLiteral{Value: v} }

func NewBool(v bool) *BooleanLiteral { return &BooleanLiteral{Value: v} }

func NewString(v string) *StringLiteral { return &StringLiteral{Value: v} }

func NewList(elems ...Expression) *ListLiteral {
	if elems == nil {
		elems = []Expression{}
	}
	return &ListLiteral{Elements: elems}
}

func NewCall(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

func NewMember(left Expression, name string) *MemberExpression {
	return &MemberExpression{Left: left, Member: NewIdent(name)}
}

func NewStaticAccess(class, member string) *StaticAccessExpression {
	return &StaticAccessExpression{ClassName: NewIdent(class), Member: NewIdent(member)}
}

func NewFieldInit(name string, value Expression) *FieldInit {
	return &FieldInit{Name: name, Value: value}
}

func NewConstruction(class string, fields ...*FieldInit) *ClassConstruction {
	return &ClassConstruction{ClassName: NewIdent(class), Fields: fields}
}

func NewInfix(left Expression, op string, right Expression) *InfixExpression {
	return &InfixExpression{Left: left, Operator: op, Right: right}
}

// NewType builds a named type annotation, e.g. NewType("List", NewType("int")).
func NewType(name string, args ...Type) *NamedType {
	return &NamedType{Name: name, Args: args}
}

func NewParam(name string, typ Type) *Parameter {
	return &Parameter{Name: name, Type: typ}
}

func NewExprBody(e Expression) *ExpressionBody { return &ExpressionBody{Expression: e} }

func NewBlock(stmts ...Statement) *BlockStatement {
	return &BlockStatement{Statements: stmts}
}

func NewReturn(value Expression) *ReturnStatement { return &ReturnStatement{Value: value} }

func NewCallStatement(call *CallExpression) *CallStatement {
	return &CallStatement{Call: call}
}

// NewFunction builds a function declaration; a nil body yields a forward declaration.
func NewFunction(name string, params []*Parameter, ret Type, body Body) *FunctionDeclaration {
	return &FunctionDeclaration{Name: name, Parameters: params, ReturnType: ret, Body: body}
}

func NewVariable(name string, typ Type, value Expression) *VariableDeclaration {
	return &VariableDeclaration{Name: name, Type: typ, Value: value}
}

func NewClass(name string, members ...ClassMember) *ClassDeclaration {
	return &ClassDeclaration{Name: name, Members: members}
}

func NewField(name string, typ Type) *FieldMember { return &FieldMember{Name: name, Type: typ} }

func NewMethod(fn *FunctionDeclaration) *MethodMember { return &MethodMember{Function: fn} }

func NewStaticMethod(fn *FunctionDeclaration) *StaticMethodMember {
	return &StaticMethodMember{Function: fn}
}

func NewProgram(decls ...Declaration) *Program {
	return &Program{Declarations: decls}
}
