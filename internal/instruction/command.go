package instruction

import "strings"

// Sentinel instruction and verb prefixes recognized by the grammar.
const (
	NoopInstruction = "NOOP"
	setPrefix       = "SET "
	runPrefix       = "RUN "
)

// DefaultValue is assigned when a SET instruction names a parameter without
// providing a value.
const DefaultValue = "ON"

// Command is the closed set of dispatchable instructions. Exactly one
// variant corresponds to each raw instruction string.
type Command interface {
	isCommand()
}

// SetParameter upserts a named parameter. Value may contain whitespace.
type SetParameter struct {
	Name  string
	Value string
}

// RunTask invokes the named task handler.
type RunTask struct {
	Name string
}

// Noop carries no action.
type Noop struct{}

// Unknown wraps instruction text the grammar could not classify.
type Unknown struct {
	Raw string
}

func (SetParameter) isCommand() {}
func (RunTask) isCommand()      {}
func (Noop) isCommand()         {}
func (Unknown) isCommand()      {}

// Parse classifies raw instruction text. It is total: every input maps to
// exactly one Command variant and no input is an error.
func Parse(raw string) Command {
	if raw == NoopInstruction {
		return Noop{}
	}
	if rest, ok := strings.CutPrefix(raw, setPrefix); ok {
		if cmd, ok := parseSet(rest); ok {
			return cmd
		}
		return Unknown{Raw: raw}
	}
	if rest, ok := strings.CutPrefix(raw, runPrefix); ok {
		if name := strings.TrimSpace(rest); name != "" {
			return RunTask{Name: name}
		}
		return Unknown{Raw: raw}
	}
	return Unknown{Raw: raw}
}

// parseSet splits "name [value...]" after the SET verb. The name is the
// first whitespace-delimited token; the rest of the string is the value,
// internal whitespace preserved.
func parseSet(rest string) (SetParameter, bool) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return SetParameter{}, false
	}
	name, value, found := strings.Cut(rest, " ")
	if !found {
		return SetParameter{Name: name, Value: DefaultValue}, true
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = DefaultValue
	}
	return SetParameter{Name: name, Value: value}, true
}
