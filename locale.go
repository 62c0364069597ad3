package liberror

import (
	"errors"

	"golang.org/x/text/language"
)

// Localizable is implemented by errors that can provide localized messages.
// [CaptureLocalized] consults it when rendering each message in the chain,
// so API payloads can carry user-facing text in the caller's language.
type Localizable interface {
	Localize(locale string) string
}

// ParseAcceptLanguage parses an Accept-Language header value and returns
// the highest-priority language tag as a BCP 47 string.
// It returns an empty string if the input is empty or cannot be parsed.
func ParseAcceptLanguage(s string) string {
	tags, qs, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return ""
	}
	best := 0
	for i := 1; i < len(tags); i++ {
		if qs[i] > qs[best] {
			best = i
		}
	}
	return tags[best].String()
}

// CaptureLocalized converts err like [Capture], except that errors
// implementing [Localizable] have their message rendered in the given
// locale. Errors that are not Localizable, or an empty locale, fall back
// to the plain Error() text. Returns nil if err is nil.
func CaptureLocalized(err error, locale string) *AnyError {
	if err == nil {
		return nil
	}
	return Flatten(localizedSource{err: err, locale: locale})
}

// localizedSource adapts a native Go error to the Source capability,
// preferring localized messages.
type localizedSource struct {
	err    error
	locale string
}

func (s localizedSource) Message() string {
	if l, ok := s.err.(Localizable); ok && s.locale != "" {
		return l.Localize(s.locale)
	}
	return s.err.Error()
}

func (s localizedSource) TypeName() string { return DescriptorOf(s.err) }

func (s localizedSource) Cause() Source {
	if cause := errors.Unwrap(s.err); cause != nil {
		return localizedSource{err: cause, locale: s.locale}
	}
	return nil
}
