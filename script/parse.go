package script

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Op is a stack operation keyword.
type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpPeek  Op = "peek"
	OpSize  Op = "size"
	OpEmpty Op = "empty"
	OpDump  Op = "dump"
	OpClear Op = "clear"
)

// Ops lists every operation in the order they are documented.
var Ops = []Op{OpPush, OpPop, OpPeek, OpSize, OpEmpty, OpDump, OpClear}

// Produces reports whether the operation yields a result.
func (o Op) Produces() bool {
	return o != OpPush && o != OpClear
}

// suggestDistance is the largest edit distance for which a "did you mean" hint is offered.
const suggestDistance = 2

// Instruction is a single parsed statement.
type Instruction struct {
	Line int      `json:"line"`
	Op   Op       `json:"op"`
	Args []string `json:"args,omitempty"`
}

// String renders the instruction back into statement form, quoting arguments when needed.
func (i Instruction) String() string {
	if len(i.Args) == 0 {
		return string(i.Op)
	}

	args := lo.Map(i.Args, func(a string, _ int) string {
		if a == "" || strings.ContainsAny(a, " \t;#'\"\\") {
			return fmt.Sprintf("%q", a)
		}
		return a
	})
	return string(i.Op) + " " + strings.Join(args, " ")
}

// SyntaxError describes a statement that could not be parsed.
type SyntaxError struct {
	Line       int
	Statement  string
	Reason     string
	Suggestion mo.Option[Op]
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("line %d: %s: %s", e.Line, e.Reason, e.Statement)
	if op, ok := e.Suggestion.Get(); ok {
		msg += fmt.Sprintf(", did you mean %s?", op)
	}
	return msg
}

// Parse splits src into instructions. Line numbers start at 1.
func Parse(src string) ([]Instruction, error) {
	var instructions []Instruction

	for n, line := range strings.Split(src, "\n") {
		parsed, err := ParseLine(line, n+1)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, parsed...)
	}

	return instructions, nil
}

// ParseLine parses the statements of a single line, attributing them to line number n.
func ParseLine(line string, n int) ([]Instruction, error) {
	var instructions []Instruction

	for _, statement := range splitStatements(line) {
		tokens, err := shlex.Split(statement)
		if err != nil {
			return nil, &SyntaxError{Line: n, Statement: strings.TrimSpace(statement), Reason: err.Error()}
		}

		if len(tokens) == 0 {
			continue
		}

		ins, err := newInstruction(n, tokens)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ins)
	}

	return instructions, nil
}

func newInstruction(n int, tokens []string) (Instruction, error) {
	op := Op(strings.ToLower(tokens[0]))
	args := tokens[1:]
	statement := strings.Join(tokens, " ")

	if !lo.Contains(Ops, op) {
		return Instruction{}, &SyntaxError{
			Line:       n,
			Statement:  statement,
			Reason:     "unknown operation",
			Suggestion: suggest(string(op)),
		}
	}

	switch {
	case op == OpPush && len(args) == 0:
		return Instruction{}, &SyntaxError{Line: n, Statement: statement, Reason: "push needs at least one value"}
	case op != OpPush && len(args) > 0:
		return Instruction{}, &SyntaxError{Line: n, Statement: statement, Reason: fmt.Sprintf("%s takes no arguments", op)}
	}

	if len(args) == 0 {
		args = nil
	}
	return Instruction{Line: n, Op: op, Args: args}, nil
}

// suggest returns the operation closest to word, if it is close enough.
func suggest(word string) mo.Option[Op] {
	closest := lo.MinBy(Ops, func(a, b Op) bool {
		return levenshtein.Distance(word, string(a)) < levenshtein.Distance(word, string(b))
	})

	if levenshtein.Distance(word, string(closest)) > suggestDistance {
		return mo.None[Op]()
	}
	return mo.Some(closest)
}

// splitStatements splits line on semicolons that are outside quotes.
// Everything after an unquoted # at the start of a word is dropped.
func splitStatements(line string) []string {
	var (
		statements []string
		current    strings.Builder
		quote      rune
		escaped    bool
		wordStart  = true
	)

	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#' && wordStart:
			return append(statements, current.String())
		case r == ';':
			statements = append(statements, current.String())
			current.Reset()
			wordStart = true
			continue
		}

		current.WriteRune(r)
		wordStart = quote == 0 && !escaped && (r == ' ' || r == '\t')
	}

	return append(statements, current.String())
}
