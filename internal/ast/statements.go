package ast

type StatementKind int

const (
	Return StatementKind = iota
	Break
	Continue
)

var statementNames = [...]string{
	Return:   "return",
	Break:    "break",
	Continue: "continue",
}

func LookupStatement(spelling string) (StatementKind, bool) {
	for kind, name := range statementNames {
		if name == spelling {
			return StatementKind(kind), true
		}
	}
	return 0, false
}

func (k StatementKind) String() string {
	if k < 0 || int(k) >= len(statementNames) {
		return "unknown"
	}
	return statementNames[k]
}

func (k StatementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
