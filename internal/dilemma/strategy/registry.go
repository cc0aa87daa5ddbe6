package strategy

import (
	"errors"
	"fmt"

	"github.com/louisbranch/dilemma/internal/dilemma"
)

// ErrUnknownStrategy indicates a strategy name with no registered builder.
var ErrUnknownStrategy = errors.New("unknown strategy")

var builders = map[string]func() dilemma.Strategy{
	"AlwaysCooperate": func() dilemma.Strategy { return AlwaysCooperate{} },
	"AlwaysDefect":    func() dilemma.Strategy { return AlwaysDefect{} },
	"TitForTat":       func() dilemma.Strategy { return TitForTat{} },
	"TwoTitsForTat":   func() dilemma.Strategy { return TwoTitsForTat{} },
	"Random":          func() dilemma.Strategy { return Random{} },
}

// order fixes the canonical listing used by Names and CLI defaults.
var order = []string{
	"AlwaysCooperate",
	"AlwaysDefect",
	"TitForTat",
	"TwoTitsForTat",
	"Random",
}

// New returns a fresh instance of the named built-in strategy.
func New(name string) (dilemma.Strategy, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return builder(), nil
}

// Names returns the canonical names of all built-in strategies.
func Names() []string {
	names := make([]string, len(order))
	copy(names, order)
	return names
}
