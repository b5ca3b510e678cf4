package cgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is returned when Compile is called without a source graph.
	ErrNilSource = errors.New("source graph is nil")

	// ErrTooManyNodes is returned when the source enumerates more nodes than
	// the uint32 index space can address.
	ErrTooManyNodes = errors.New("too many nodes for index space")
)

// ErrUnknownNeighbor indicates that a source listed a neighbor that was never
// enumerated as a node.
//
// The node identities are formatted with %v.
type ErrUnknownNeighbor struct {
	Node     any
	Neighbor any
}

func (e *ErrUnknownNeighbor) Error() string {
	return fmt.Sprintf("unknown neighbor %v of node %v", e.Neighbor, e.Node)
}

// ErrCompile wraps a failure raised while compiling a source graph.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrCompile struct {
	Nodes int // nodes indexed before the failure
	cause error
}

func (e *ErrCompile) Error() string {
	return fmt.Sprintf("compile failed after %d nodes: %v", e.Nodes, e.cause)
}

func (e *ErrCompile) Unwrap() error { return e.cause }
