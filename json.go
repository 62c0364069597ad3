package liberror

import (
	"bytes"
	"encoding/json"
	"errors"
)

// wireError is the tagged-union wire shape of an AnyError. Pointer fields
// distinguish absent fields from zero values on decode.
type wireError struct {
	Type    *string      `json:"$type"`
	Context *wireContext `json:"context"`
}

type wireContext struct {
	Message *string    `json:"message"`
	Inner   *wireError `json:"innerError"`
}

// MarshalJSON encodes the node as
//
//	{"$type": <type>, "context": {"message": <message>, "innerError": <nested or null>}}
//
// A leaf node always carries an explicit "innerError": null.
func (e *AnyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire())
}

func (e *AnyError) wire() *wireError {
	if e == nil {
		return nil
	}
	return &wireError{
		Type: &e.Type,
		Context: &wireContext{
			Message: &e.Message,
			Inner:   e.Inner.wire(),
		},
	}
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON. The "$type"
// discriminant is open-ended: any string is accepted. Missing required
// fields or wrong field types surface a decode error, and the receiver is
// left untouched; no partial reconstruction is attempted.
func (e *AnyError) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	node, err := Decode(data)
	if err != nil {
		return err
	}
	*e = *node
	return nil
}

// Decode reconstructs an AnyError from its wire-format JSON encoding.
func Decode(data []byte) (*AnyError, error) {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return w.node()
}

// Encode serializes the node to its wire-format JSON encoding.
func Encode(e *AnyError) ([]byte, error) {
	return json.Marshal(e)
}

func (w *wireError) node() (*AnyError, error) {
	switch {
	case w.Type == nil:
		return nil, errors.New(`liberror: decode: missing required field "$type"`)
	case w.Context == nil:
		return nil, errors.New(`liberror: decode: missing required field "context"`)
	case w.Context.Message == nil:
		return nil, errors.New(`liberror: decode: missing required field "context.message"`)
	}
	node := &AnyError{Type: *w.Type, Message: *w.Context.Message}
	if w.Context.Inner != nil {
		inner, err := w.Context.Inner.node()
		if err != nil {
			return nil, err
		}
		node.Inner = inner
	}
	return node, nil
}
