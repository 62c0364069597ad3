package liberror

import "log/slog"

// LogValue implements slog.LogValuer, allowing an *AnyError to be logged
// directly as a structured value. The cause chain is rendered as nested
// "cause" groups.
func (e *AnyError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs,
		slog.String("type", e.Type),
		slog.String("msg", e.Message),
	)
	if e.Inner != nil {
		attrs = append(attrs, slog.Attr{Key: "cause", Value: e.Inner.LogValue()})
	}
	return slog.GroupValue(attrs...)
}

// SlogAttr captures err and builds a slog.Attr from the resulting chain.
func SlogAttr(err error) slog.Attr {
	node := Capture(err)
	if node == nil {
		return slog.Attr{}
	}
	return slog.Attr{Key: "error", Value: node.LogValue()}
}

// Ensure *AnyError implements slog.LogValuer at compile time.
var _ slog.LogValuer = (*AnyError)(nil)
