package liberror

import (
	"errors"
	"strconv"
	"strings"
)

// Source is the capability interface consumed by [Flatten]. Any concrete
// error implementation can be adapted to it; [Capture] provides the adapter
// for native Go errors.
type Source interface {
	// Message returns the rendered display text of the error.
	Message() string
	// TypeName returns the raw reflective type descriptor of the error
	// value, suitable for CanonicalTypeName.
	TypeName() string
	// Cause returns the next error in the chain, or nil for a leaf.
	Cause() Source
}

// AnyError is a serializable snapshot of an error and its cause chain.
// Type is the canonical type name of the source error, Message its display
// text captured at conversion time, and Inner the snapshot of its cause,
// if any. A node is never mutated after construction; use [AnyError.Clone]
// for an independent copy.
type AnyError struct {
	Type    string
	Message string
	Inner   *AnyError
}

// compile-time check
var _ error = (*AnyError)(nil)

// MaxChainDepth bounds the recursion over a cause chain. A chain longer
// than this (in practice, a cyclic or otherwise misbehaving Unwrap
// implementation) is truncated and terminated with a sentinel node tagged
// [TruncatedType].
const MaxChainDepth = 64

// TruncatedType tags the sentinel node attached when a cause chain exceeds
// MaxChainDepth.
const TruncatedType = "liberror.Truncated"

// Capture converts a native Go error into an AnyError, recursing over the
// errors.Unwrap chain. The message of every error in the chain is captured
// eagerly; later changes to the source error do not affect the snapshot.
// Returns nil if err is nil.
func Capture(err error) *AnyError {
	if err == nil {
		return nil
	}
	return Flatten(errorSource{err})
}

// Flatten converts any Source into an AnyError by plain recursion over the
// cause links. Returns nil if src is nil.
func Flatten(src Source) *AnyError {
	if src == nil {
		return nil
	}
	return flatten(src, 0)
}

func flatten(src Source, depth int) *AnyError {
	if depth >= MaxChainDepth {
		return &AnyError{
			Type:    TruncatedType,
			Message: "cause chain truncated after " + strconv.Itoa(MaxChainDepth) + " errors",
		}
	}
	node := &AnyError{
		Type:    CanonicalTypeName(src.TypeName()),
		Message: src.Message(),
	}
	if cause := src.Cause(); cause != nil {
		node.Inner = flatten(cause, depth+1)
	}
	return node
}

// Error renders the node as "<type>: <message>", with the cause chain
// appended in nested parentheses. A leaf node has no parenthesized suffix.
func (e *AnyError) Error() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *AnyError) write(b *strings.Builder) {
	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Inner != nil {
		b.WriteByte('(')
		e.Inner.write(b)
		b.WriteByte(')')
	}
}

// Clone returns a deep copy sharing no nodes with the receiver.
func (e *AnyError) Clone() *AnyError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Inner = e.Inner.Clone()
	return &cp
}

// Len returns the number of nodes in the chain, including the receiver.
// Len of a nil node is 0.
func (e *AnyError) Len() int {
	n := 0
	for node := e; node != nil; node = node.Inner {
		n++
	}
	return n
}

// errorSource adapts a native Go error to the Source capability.
type errorSource struct {
	err error
}

func (s errorSource) Message() string  { return s.err.Error() }
func (s errorSource) TypeName() string { return DescriptorOf(s.err) }

func (s errorSource) Cause() Source {
	if cause := errors.Unwrap(s.err); cause != nil {
		return errorSource{cause}
	}
	return nil
}
