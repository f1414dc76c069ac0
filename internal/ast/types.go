package ast

type PrimitiveType int

const (
	Int8 PrimitiveType = iota
	Int16
	Int32
	Int64
	Float32
	Float64
	Bool
	Char
	String
)

var typeNames = [...]string{
	Int8:    "Int8",
	Int16:   "Int16",
	Int32:   "Int32",
	Int64:   "Int64",
	Float32: "Float32",
	Float64: "Float64",
	Bool:    "Bool",
	Char:    "Char",
	String:  "String",
}

var typesBySpelling = map[string]PrimitiveType{}

func init() {
	for t, name := range typeNames {
		typesBySpelling[name] = PrimitiveType(t)
	}
}

// LookupType resolves an exact type spelling. ok is false for anything that
// is not a primitive type name.
func LookupType(spelling string) (t PrimitiveType, ok bool) {
	t, ok = typesBySpelling[spelling]
	return t, ok
}

func (t PrimitiveType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

func (t PrimitiveType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
