package script

// Session is an interactive interpreter whose element type was chosen at runtime.
type Session interface {
	Type() string
	Size() int
	Contents() []string
	Exec(ins Instruction) (Step, error)
	ExecLine(line string, n int) ([]Step, error)
	Undo() bool
}

var sessions = map[string]func(strict bool, dumpWidth uint) Session{
	String.Name: func(strict bool, w uint) Session { return NewInterpreter(String, strict, w) },
	Int.Name:    func(strict bool, w uint) Session { return NewInterpreter(Int, strict, w) },
	Float.Name:  func(strict bool, w uint) Session { return NewInterpreter(Float, strict, w) },
	Bool.Name:   func(strict bool, w uint) Session { return NewInterpreter(Bool, strict, w) },
}

// NewSession returns an interpreter for the named element type.
func NewSession(typeName string, strict bool, dumpWidth uint) (Session, error) {
	newSession, ok := sessions[typeName]
	if !ok {
		return nil, errUnknownType(typeName)
	}
	return newSession(strict, dumpWidth), nil
}
