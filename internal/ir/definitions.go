package ir

// Definition is an entry of the module's ordered definition list.
type Definition interface {
	DefinitionName() string
	definitionNode()
}

// Function is a lowered function. Owner is set for former static and
// instance methods; for the latter Params[0] is the receiver.
type Function struct {
	Name          string
	Owner         string
	Params        []Param
	ReturnType    Type
	Body          *Block
	IsDeclaration bool // No body; implemented outside this module
}

func (f *Function) definitionNode()        {}
func (f *Function) DefinitionName() string { return QualifiedName(f.Owner, f.Name) }

// Signature returns the pre-registration entry describing f.
func (f *Function) Signature() Signature {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return Signature{Kind: FunctionSignature, Owner: f.Owner, Name: f.Name, Params: params, Type: f.ReturnType}
}

// Variable is a global with its lowered initializer.
type Variable struct {
	Name string
	Type Type
	Init Expr
}

func (v *Variable) definitionNode()        {}
func (v *Variable) DefinitionName() string { return v.Name }

// TypeDef is a flat user type: just its fields. Methods were erased into
// owned functions.
type TypeDef struct {
	Name   string
	Fields []Field
}

func (t *TypeDef) definitionNode()        {}
func (t *TypeDef) DefinitionName() string { return t.Name }

// SignatureKind tells functions from variables in the pre-registration table.
type SignatureKind int

const (
	FunctionSignature SignatureKind = iota
	VariableSignature
)

// Signature is what is known about a definition before it is lowered.
// Type is the return type of a function or the declared type of a variable.
type Signature struct {
	Kind   SignatureKind
	Owner  string
	Name   string
	Params []Type
	Type   Type
}

// QualifiedName is the key of the signature in the module.
func (s Signature) QualifiedName() string { return QualifiedName(s.Owner, s.Name) }

func (s Signature) String() string {
	if s.Kind == VariableSignature {
		return s.QualifiedName() + ": " + s.Type.String()
	}
	return s.QualifiedName() + "(" + typeList(s.Params) + "): " + s.Type.String()
}
