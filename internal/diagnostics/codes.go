package diagnostics

// ErrorCode identifies the kind of a diagnostic.
type ErrorCode string

// Semantic checker errors (E prefix)
const (
	ErrRedefinition               ErrorCode = "E001"
	ErrUndefinedName              ErrorCode = "E002"
	ErrTypeMismatch               ErrorCode = "E003"
	ErrNotCallable                ErrorCode = "E004"
	ErrArityMismatch              ErrorCode = "E005"
	ErrNotAClass                  ErrorCode = "E006"
	ErrMissingFieldInit           ErrorCode = "E007"
	ErrUnknownFieldInit           ErrorCode = "E008"
	ErrInvalidConstructionContext ErrorCode = "E009"
	ErrNoSuchMember               ErrorCode = "E010"
	ErrStaticMemberNotVisible     ErrorCode = "E011"
	ErrUnknownOperator            ErrorCode = "E012"
	ErrNotAValue                  ErrorCode = "E013"
)

// Lowering errors (G prefix)
const (
	ErrUnresolvedReference ErrorCode = "G001"
	ErrMissingSignature    ErrorCode = "G002"
)

var errorTemplates = map[ErrorCode]string{
	ErrRedefinition:               "redefinition of `%s`",
	ErrUndefinedName:              "undefined name `%s`",
	ErrTypeMismatch:               "type mismatch: expected %s, got %s",
	ErrNotCallable:                "`%s` is not callable (type %s)",
	ErrArityMismatch:              "expected %d argument(s), got %d",
	ErrNotAClass:                  "`%s` is not a class",
	ErrMissingFieldInit:           "field `%s` is not initialized",
	ErrUnknownFieldInit:           "class `%s` has no field `%s`",
	ErrInvalidConstructionContext: "class `%s` can only be constructed inside its own methods",
	ErrNoSuchMember:               "`%s` has no member `%s`",
	ErrStaticMemberNotVisible:     "static method `%s` must be called as `%s::%s`",
	ErrUnknownOperator:            "unknown operator `%s`",
	ErrNotAValue:                  "%s `%s` is not a value",
	ErrUnresolvedReference:        "cannot resolve `%s` during lowering",
	ErrMissingSignature:           "definition `%s` was not pre-registered",
}

var codeNames = map[ErrorCode]string{
	ErrRedefinition:               "Redefinition",
	ErrUndefinedName:              "UndefinedName",
	ErrTypeMismatch:               "TypeMismatch",
	ErrNotCallable:                "NotCallable",
	ErrArityMismatch:              "ArityMismatch",
	ErrNotAClass:                  "NotAClass",
	ErrMissingFieldInit:           "MissingFieldInit",
	ErrUnknownFieldInit:           "UnknownFieldInit",
	ErrInvalidConstructionContext: "InvalidConstructionContext",
	ErrNoSuchMember:               "NoSuchMember",
	ErrStaticMemberNotVisible:     "StaticMemberNotVisible",
	ErrUnknownOperator:            "UnknownOperator",
	ErrNotAValue:                  "NotAValue",
	ErrUnresolvedReference:        "UnresolvedReference",
	ErrMissingSignature:           "MissingSignature",
}

// Name returns the human readable kind, e.g. "Redefinition".
func (c ErrorCode) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return string(c)
}
