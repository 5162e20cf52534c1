// Package shell is the per-calculator form state machine shared by every
// front end. An Instance starts in Editing, moves to ResultShown on an
// explicit Calculate and only returns to Editing on Reset. Edits made while
// a result is shown do not touch that result.
package shell

import (
	"fmt"

	"go-calculators/internal/calc"
)

// State is the form state.
type State int

const (
	Editing State = iota
	ResultShown
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case ResultShown:
		return "result_shown"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Instance owns the inputs and the last result of one calculator form. It is
// not safe for concurrent use.
type Instance struct {
	def     *calc.Definition
	fields  []calc.InputField
	state   State
	result  *calc.Result
	inputs  []calc.InputField
	message string
}

// New returns an Instance in Editing with default inputs.
func New(def *calc.Definition) *Instance {
	return &Instance{
		def:    def,
		fields: def.DefaultFields(),
		state:  Editing,
	}
}

// Definition returns the calculator behind the form.
func (i *Instance) Definition() *calc.Definition {
	return i.def
}

// State returns the current state.
func (i *Instance) State() State {
	return i.state
}

// Fields returns a copy of the current raw inputs.
func (i *Instance) Fields() []calc.InputField {
	return append([]calc.InputField(nil), i.fields...)
}

// Value returns the raw value of a field.
func (i *Instance) Value(name string) (string, bool) {
	for _, f := range i.fields {
		if f.Name == name {
			return f.RawValue, true
		}
	}
	return "", false
}

// Set replaces the raw value of a field. It never recomputes.
func (i *Instance) Set(name, raw string) error {
	for idx := range i.fields {
		if i.fields[idx].Name == name {
			i.fields[idx].RawValue = raw
			return nil
		}
	}
	return fmt.Errorf("calculator %q has no field %q", i.def.Slug, name)
}

// Calculate snapshots the inputs and runs the calculator. On a validation
// error the message is kept and any previously shown result stays as it
// was. Any other error is returned unchanged.
func (i *Instance) Calculate() (calc.Result, error) {
	snapshot := i.Fields()

	res, err := i.def.Run(snapshot)
	if err != nil {
		if ve, ok := calc.AsValidation(err); ok {
			i.message = ve.Message
		}
		return calc.Result{}, err
	}

	i.result = &res
	i.inputs = snapshot
	i.message = ""
	i.state = ResultShown
	return res, nil
}

// Result returns the frozen result, if one is shown.
func (i *Instance) Result() (calc.Result, bool) {
	if i.result == nil {
		return calc.Result{}, false
	}
	return *i.result, true
}

// Message returns the last validation message, empty after a successful
// calculation or a reset.
func (i *Instance) Message() string {
	return i.message
}

// Summary returns the shareable view of the shown result and of the inputs
// it was computed from.
func (i *Instance) Summary() (calc.ShareableSummary, bool) {
	if i.result == nil {
		return calc.ShareableSummary{}, false
	}
	return calc.Summarize(i.def, i.inputs, *i.result), true
}

// Reset restores default inputs and drops the result.
func (i *Instance) Reset() {
	i.fields = i.def.DefaultFields()
	i.result = nil
	i.inputs = nil
	i.message = ""
	i.state = Editing
}
