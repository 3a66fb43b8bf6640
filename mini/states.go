package mini

import (
	"fmt"

	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/util"
)

type state int

const (
	mainMenuState state = iota + 1
	inspectMenuState
	pushState
	clearState
	quitState
)

// Menu entries.
const (
	optPush    = "Push"
	optPop     = "Pop"
	optInspect = "Inspect"
	optClear   = "Clear"
	optQuit    = "Quit"

	optPeek  = "Peek"
	optSize  = "Size"
	optEmpty = "Is empty"
	optDump  = "Dump"
	optBack  = "Back"
)

var inspectOps = map[string]script.Op{
	optPeek:  script.OpPeek,
	optSize:  script.OpSize,
	optEmpty: script.OpEmpty,
	optDump:  script.OpDump,
}

func (m *mini) menuTitle() string {
	return fmt.Sprintf("%s stack, %s", m.session.Type(), util.Quantify(m.session.Size(), "item", "items"))
}

func (m *mini) handleMainMenuState() error {
	choice, err := m.prompt.Select(m.menuTitle(), []string{optPush, optPop, optInspect, optClear, optQuit})
	if err != nil {
		return err
	}

	switch choice {
	case optPush:
		m.newState(pushState)
	case optPop:
		m.exec(script.Instruction{Op: script.OpPop})
	case optInspect:
		m.newState(inspectMenuState)
	case optClear:
		m.newState(clearState)
	case optQuit:
		m.newState(quitState)
	}
	return nil
}

func (m *mini) handleInspectMenuState() error {
	choice, err := m.prompt.Select(m.menuTitle(), []string{optPeek, optSize, optEmpty, optDump, optBack})
	if err != nil {
		return err
	}

	if op, ok := inspectOps[choice]; ok {
		m.exec(script.Instruction{Op: op})
		return nil
	}

	m.previousState()
	return nil
}

func (m *mini) handlePushState() error {
	value, err := m.prompt.Input(fmt.Sprintf("Value to push (%s)", m.session.Type()))
	if err != nil {
		return err
	}

	if value == "" {
		m.previousState()
		return nil
	}

	if m.exec(script.Instruction{Op: script.OpPush, Args: []string{value}}) {
		m.previousState()
	}
	return nil
}

func (m *mini) handleClearState() error {
	if m.session.Size() > 0 {
		ok, err := m.prompt.Confirm(fmt.Sprintf("Remove %s?", util.Quantify(m.session.Size(), "item", "items")))
		if err != nil {
			return err
		}

		if ok {
			m.exec(script.Instruction{Op: script.OpClear})
		}
	}

	m.previousState()
	return nil
}

// exec runs ins and reports the outcome. It returns false if the instruction failed.
func (m *mini) exec(ins script.Instruction) bool {
	m.statements++
	ins.Line = m.statements

	step, err := m.session.Exec(ins)
	if err != nil {
		fail(m.out, err)
		return false
	}

	switch ins.Op {
	case script.OpPush:
		succeed(m.out, fmt.Sprintf("%s %s", icon.Get(icon.Push), ins.Args[0]))
	case script.OpClear:
		succeed(m.out, "Stack cleared")
	case script.OpPop, script.OpPeek:
		result, ok := step.Result.Get()
		if !ok {
			fmt.Fprintf(m.out, "%s Stack is empty\n", icon.Get(icon.Empty))
			break
		}

		i := icon.Pop
		if ins.Op == script.OpPeek {
			i = icon.Peek
		}
		fmt.Fprintf(m.out, "%s %s\n", icon.Get(i), result)
	default:
		fmt.Fprintf(m.out, "%s %s: %s\n", icon.Get(icon.Mark), ins.Op, step.Result.OrElse(""))
	}
	return true
}
