package compare

// NilCheck handles the nil cases of a pointer comparison.
//
// It returns (equal, more). When more is false, equal is the final answer:
// true if both are nil, false if exactly one is. When more is true both
// pointers are non-nil and the caller has to compare their contents.
//
//	func (f *Function) Equal(other Node) bool {
//	    o, ok := other.(*Function)
//	    if !ok {
//	        return false
//	    }
//	    if eq, more := compare.NilCheck(f, o); !more {
//	        return eq
//	    }
//	    return f.Name == o.Name && ...
//	}
func NilCheck[T any](a, b *T) (equal bool, more bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointers to comparable values. Both nil is equal.
func Pointers[T comparable](a, b *T) bool {
	if eq, more := NilCheck(a, b); !more {
		return eq
	}
	return *a == *b
}

// PointersWithEqual compares two pointers with a custom equality function,
// which is only called when both are non-nil.
//
//	compare.PointersWithEqual(f.Parameters, o.Parameters,
//	    func(a, b *ExpressionList) bool { return a.Equal(b) })
func PointersWithEqual[T any](a, b *T, equalFunc func(*T, *T) bool) bool {
	if eq, more := NilCheck(a, b); !more {
		return eq
	}
	return equalFunc(a, b)
}

// Slices reports whether a and b have the same length and pairwise equal
// elements according to equalFunc.
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}

	return true
}
