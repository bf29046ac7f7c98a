package mibig

// AbsentPolicy tells the encoder what an absent optional field looks like on
// the wire.
type AbsentPolicy uint8

const (
	OmitWhenAbsent AbsentPolicy = iota // Drop the key entirely.
	NullWhenAbsent                     // Keep the key with a null value.
)

// Fields is the generic JSON object produced by ToJSON methods.
type Fields map[string]any

// Set stores a required field.
func (f Fields) Set(key string, v any) Fields {
	f[key] = v
	return f
}

// Optional stores v when present is true; otherwise the key is handled
// according to policy.
func (f Fields) Optional(key string, v any, present bool, policy AbsentPolicy) Fields {
	switch {
	case present:
		f[key] = v
	case policy == NullWhenAbsent:
		f[key] = nil
	default:
		delete(f, key)
	}
	return f
}

// Map returns f as a plain map, which is what the JSON encoders and the
// decoders in this module expect.
func (f Fields) Map() map[string]any { return map[string]any(f) }
