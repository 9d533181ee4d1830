package typesystem

import (
	"fmt"
)

// Unify attempts to find a substitution that makes expected and actual equal.
// Rules are tried in order:
//   - a free variable on either side binds to the other side;
//   - void only unifies with void;
//   - primitives unify iff their names match;
//   - lists unify iff their elements do;
//   - functions unify iff arities match, parameters pairwise, then returns;
//   - classes unify iff their names are identical.
//
// Everything else is a *UnifyError.
func Unify(expected, actual Type) (Subst, error) {
	s, err := unifyInternal(expected, actual)
	if err != nil {
		// Report the outermost pair, not the nested one that failed.
		return nil, &UnifyError{Expected: expected, Actual: actual, Reason: err}
	}
	return s, nil
}

func unifyInternal(t1, t2 Type) (Subst, error) {
	if tv, ok := t1.(TVar); ok {
		return Bind(tv, t2)
	}
	if tv, ok := t2.(TVar); ok {
		return Bind(tv, t1)
	}

	switch t1 := t1.(type) {
	case TVoid:
		if _, ok := t2.(TVoid); ok {
			return Subst{}, nil
		}
		return nil, errUnify(t1, t2)

	case TCon:
		if c2, ok := t2.(TCon); ok && c2.Name == t1.Name {
			return Subst{}, nil
		}
		return nil, errUnify(t1, t2)

	case TList:
		l2, ok := t2.(TList)
		if !ok {
			return nil, errUnify(t1, t2)
		}
		return unifyInternal(t1.Elem, l2.Elem)

	case TFunc:
		f2, ok := t2.(TFunc)
		if !ok {
			return nil, errUnify(t1, t2)
		}
		if len(t1.Params) != len(f2.Params) {
			return nil, errMismatch(fmt.Sprintf("function parameter count mismatch: %d vs %d", len(t1.Params), len(f2.Params)))
		}
		s1 := Subst{}
		for i := 0; i < len(t1.Params); i++ {
			p1 := t1.Params[i].Apply(s1)
			p2 := f2.Params[i].Apply(s1)
			s2, err := unifyInternal(p1, p2)
			if err != nil {
				return nil, err
			}
			s1 = s1.Compose(s2)
		}
		s3, err := unifyInternal(t1.ReturnType.Apply(s1), f2.ReturnType.Apply(s1))
		if err != nil {
			return nil, err
		}
		return s1.Compose(s3), nil

	case TClass:
		if c2, ok := t2.(TClass); ok && c2.Name == t1.Name {
			return Subst{}, nil
		}
		return nil, errUnify(t1, t2)

	default:
		return nil, errMismatch(fmt.Sprintf("unknown type kind: %T", t1))
	}
}

// Bind binds a type variable to a type, performing the occurs check.
func Bind(tv TVar, t Type) (Subst, error) {
	// If t is the same variable, return empty substitution
	if tVal, ok := t.(TVar); ok && tVal.Name == tv.Name {
		return Subst{}, nil
	}

	// Occurs check: ensure tv does not appear in t (to avoid infinite types like a = List a)
	if OccursCheck(tv, t) {
		return nil, errMismatch(fmt.Sprintf("infinite type detected: %s in %s", tv, t))
	}

	return Subst{tv.Name: t}, nil
}

// OccursCheck returns true if tv appears free in t.
func OccursCheck(tv TVar, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v.Name == tv.Name {
			return true
		}
	}
	return false
}

func errUnify(t1, t2 Type) error {
	return fmt.Errorf("cannot unify %s with %s", t1, t2)
}

func errMismatch(msg string) error {
	return fmt.Errorf("type mismatch: %s", msg)
}
