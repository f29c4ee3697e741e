// Package compare holds small generic helpers for writing Equal methods.
//
// The AST and the SELECT grammar types both implement structural equality
// that ignores source positions. Those methods all start with the same nil
// dance and then walk child slices; these helpers keep that short:
//
//	if eq, more := compare.NilCheck(a, b); !more {
//	    return eq
//	}
//	return a.Name == b.Name &&
//	    compare.Slices(a.Elements, b.Elements, func(x, y Node) bool { return x.Equal(y) })
package compare
