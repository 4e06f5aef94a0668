package engine

import (
	"strings"

	"github.com/pkg/errors"
)

// Implementation selects which update strategy drives a run
type Implementation int

const (
	SequentialDense Implementation = iota
	Sparse
	ParallelDense
)

// ErrUnknownImplementation is returned for selector names outside the known set
var ErrUnknownImplementation = errors.New("unknown implementation")

var implementationNames = map[string]Implementation{
	"naive":      SequentialDense,
	"sequential": SequentialDense,
	"dense":      SequentialDense,
	"hash":       Sparse,
	"hashset":    Sparse,
	"sparse":     Sparse,
	"parallel":   ParallelDense,
}

func (i Implementation) String() string {
	switch i {
	case SequentialDense:
		return "naive"
	case Sparse:
		return "hash"
	case ParallelDense:
		return "parallel"
	default:
		return "unknown"
	}
}

// ParseImplementation maps a selector name (naive, hash, parallel or an alias) to an Implementation
func ParseImplementation(name string) (Implementation, error) {
	impl, ok := implementationNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownImplementation,
			"[ParseImplementation] %q, choose from 'naive', 'hash', or 'parallel'", name)
	}
	return impl, nil
}
