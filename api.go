package mibig

// Validator is implemented by every annotation entity. Validate is pure: it
// never panics on bad data and returns issues in depth-first declaration
// order. An empty result means the value is valid under vc.
type Validator interface {
	Validate(vc *Context) Issues
}

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(a A) (B, error) // A -> B, Issues on malformed input.
	Encode(b B) (A, error) // B -> A.
}

// Build is the construction boundary: it validates v under vc and returns
// either v or the full Issues list as error.
func Build[T Validator](v T, vc *Context) (T, error) {
	if iss := v.Validate(vc); len(iss) > 0 {
		var zero T
		return zero, iss
	}
	return v, nil
}

// MustBuild is like Build but panics on validation failure. It is intended for
// fixtures and package-level literals.
func MustBuild[T Validator](v T, vc *Context) T {
	out, err := Build(v, vc)
	if err != nil {
		panic("mibig: " + err.Error())
	}
	return out
}

// Check validates v and returns the Issues as error, or nil.
func Check(v Validator, vc *Context) error {
	if iss := v.Validate(vc); len(iss) > 0 {
		return iss
	}
	return nil
}

// Is reports whether v is valid under vc.
func Is(v Validator, vc *Context) bool {
	return len(v.Validate(vc)) == 0
}

// ValidateEach validates every element of vs and anchors the issues of
// element i at /i.
func ValidateEach[T Validator](vs []T, vc *Context) Issues {
	var out Issues
	for i, v := range vs {
		out = append(out, v.Validate(vc).Under(Root().Index(i))...)
	}
	return out
}
