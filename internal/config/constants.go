package config

// SourceFileExt is the extension of program-tree documents produced by the parser.
const SourceFileExt = ".elz.yaml"

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "elz.yaml"

// IsTestMode indicates if the program is running under tests.
// Set once at startup; it makes fresh type variables print as t?.
var IsTestMode = false

// Built-in type names
const (
	VoidTypeName    = "void"
	IntTypeName     = "int"
	FloatTypeName   = "f64"
	BoolTypeName    = "bool"
	StringTypeName  = "string"
	CStringTypeName = "_c_string"
	ListTypeName    = "List"
)

// PrimitiveTypeNames are the names that annotate to a primitive type.
var PrimitiveTypeNames = []string{
	IntTypeName,
	FloatTypeName,
	BoolTypeName,
	StringTypeName,
	CStringTypeName,
}

// DefaultIntrinsicTypes are class names reserved by the backend. A class
// declaration with one of these names is never lowered.
var DefaultIntrinsicTypes = []string{
	VoidTypeName,
	IntTypeName,
	FloatTypeName,
	BoolTypeName,
	CStringTypeName,
	ListTypeName,
}

// DefaultReceiverName is the parameter synthesized for instance methods.
const DefaultReceiverName = "self"

// IsPrimitiveTypeName reports whether name annotates a primitive type.
func IsPrimitiveTypeName(name string) bool {
	for _, p := range PrimitiveTypeNames {
		if p == name {
			return true
		}
	}
	return false
}
