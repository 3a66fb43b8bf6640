package script

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/lifo-cli/lifo/log"
	logrus "github.com/sirupsen/logrus"
)

// Options configures a script run.
type Options struct {
	Out       io.Writer
	Source    string
	Type      string
	Json      bool
	Echo      bool
	Strict    bool
	DumpWidth uint
}

// Output is the structured result of a run.
type Output struct {
	// ID identifies the run in logs.
	ID    string `json:"id"`
	Type  string `json:"type"`
	Steps []Step `json:"steps"`
	// Final holds the elements left on the stack, bottom to top.
	Final []string `json:"final"`
}

// Run executes options.Source and writes the result to options.Out.
// When execution fails midway, the steps completed so far are still written.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	out, err := Execute(ctx, options)
	if out == nil {
		return err
	}

	var writeErr error
	if options.Json {
		writeErr = WriteJSON(options.Out, out)
	} else {
		writeErr = WriteText(options.Out, out, options.Echo)
	}

	if err != nil {
		return err
	}
	return writeErr
}

// Execute parses and runs options.Source without writing anything.
func Execute(ctx context.Context, options *Options) (*Output, error) {
	runner, ok := runners[options.Type]
	if !ok {
		return nil, errUnknownType(options.Type)
	}
	return runner(ctx, options)
}

func execute[T any](ctx context.Context, options *Options, codec Codec[T]) (*Output, error) {
	instructions, err := Parse(options.Source)
	if err != nil {
		return nil, err
	}

	out := &Output{
		ID:    uuid.NewString(),
		Type:  codec.Name,
		Steps: make([]Step, 0, len(instructions)),
	}

	logger := log.WithFields(logrus.Fields{"run": out.ID, "type": codec.Name})
	logger.Debugf("executing %d statements", len(instructions))

	in := NewInterpreter(codec, options.Strict, options.DumpWidth)
	for _, ins := range instructions {
		if err = ctx.Err(); err != nil {
			break
		}

		var step Step
		step, err = in.Exec(ins)
		if err != nil {
			break
		}
		out.Steps = append(out.Steps, step)
	}

	out.Final = in.Contents()
	if out.Final == nil {
		out.Final = []string{}
	}

	if err != nil {
		logger.WithError(err).Warn("run stopped")
		return out, err
	}

	logger.WithField("size", len(out.Final)).Debug("run finished")
	return out, nil
}

// WriteJSON encodes out as a single JSON document.
func WriteJSON(w io.Writer, out *Output) error {
	return json.NewEncoder(w).Encode(out)
}

// WriteText prints one line per result-producing step. Absent results print as "none".
// With echo set, every statement is printed before its result.
func WriteText(w io.Writer, out *Output, echo bool) error {
	for _, step := range out.Steps {
		if echo {
			if _, err := fmt.Fprintf(w, "> %s\n", step.Statement); err != nil {
				return err
			}
		}

		if !step.Op.Produces() {
			continue
		}

		if _, err := fmt.Fprintln(w, step.Result.OrElse("none")); err != nil {
			return err
		}
	}
	return nil
}
