package liberror

import (
	"reflect"
	"strconv"
	"strings"
)

// wellKnownTypes maps reflective descriptors of opaque standard-library
// values to the stable alias a reader expects as a discriminant tag.
// The concrete types behind errors.New, fmt.Errorf and errors.Join are
// unexported implementation details; their names carry no information
// beyond "a standard error value".
var wellKnownTypes = map[string]string{
	"*errors.errorString": "error",
	"*errors.joinError":   "error",
	"*fmt.wrapError":      "error",
	"*fmt.wrapErrors":     "error",
	"interface {}":        "any",
}

// DescriptorOf returns the raw reflective type descriptor of v's dynamic
// type, with fully-qualified import paths. Feed the result to
// [CanonicalTypeName] to obtain a stable display form.
func DescriptorOf(v any) string {
	return DescriptorFor(reflect.TypeOf(v))
}

// DescriptorFor returns the raw descriptor for t. Named types are rendered
// as "<import path>.<name>"; unnamed composites are rendered structurally.
// A nil type yields "nil".
func DescriptorFor(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + t.Name()
		}
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + DescriptorFor(t.Elem())
	case reflect.Slice:
		return "[]" + DescriptorFor(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + DescriptorFor(t.Elem())
	case reflect.Map:
		return "map[" + DescriptorFor(t.Key()) + "]" + DescriptorFor(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + DescriptorFor(t.Elem())
		case reflect.SendDir:
			return "chan<- " + DescriptorFor(t.Elem())
		default:
			return "chan " + DescriptorFor(t.Elem())
		}
	default:
		return t.String()
	}
}

// CanonicalTypeOf is shorthand for CanonicalTypeName(DescriptorOf(v)).
func CanonicalTypeOf(v any) string {
	return CanonicalTypeName(DescriptorOf(v))
}

// CanonicalTypeName normalizes a raw reflective type descriptor into a
// stable, human-readable name: opaque standard error wrappers collapse to
// "error", standard-library import paths lose their directory part, and
// the structural shape (pointers, slices, arrays, maps, channels, generic
// instantiations) is preserved.
//
// The function is total and idempotent: malformed input is returned
// unchanged, and applying it to an already-canonical name is a no-op.
func CanonicalTypeName(name string) string {
	if alias, ok := wellKnownTypes[name]; ok {
		return alias
	}
	if rest, ok := strings.CutPrefix(name, "[]"); ok {
		return "[]" + CanonicalTypeName(rest)
	}
	if strings.HasPrefix(name, "[") {
		return canonicalArray(name)
	}
	if rest, ok := strings.CutPrefix(name, "*"); ok {
		return "*" + CanonicalTypeName(rest)
	}
	for _, sigil := range []string{"<-chan ", "chan<- ", "chan "} {
		if rest, ok := strings.CutPrefix(name, sigil); ok {
			return sigil + CanonicalTypeName(rest)
		}
	}
	if strings.HasPrefix(name, "map[") {
		return canonicalMap(name)
	}
	if open := strings.IndexByte(name, '['); open > 0 && strings.HasSuffix(name, "]") {
		base := canonicalBase(name[:open])
		args := splitTypeArgs(name[open+1 : len(name)-1])
		for i, arg := range args {
			args[i] = CanonicalTypeName(arg)
		}
		return base + "[" + strings.Join(args, ", ") + "]"
	}
	return canonicalBase(name)
}

// canonicalArray handles fixed-size arrays ("[N]T"). Anything array-like
// that does not parse as a decimal size is returned unchanged.
func canonicalArray(name string) string {
	end := strings.IndexByte(name, ']')
	if end <= 1 {
		return name
	}
	for _, c := range []byte(name[1:end]) {
		if c < '0' || c > '9' {
			return name
		}
	}
	return name[:end+1] + CanonicalTypeName(name[end+1:])
}

// canonicalMap handles "map[K]V", scanning for the key's closing bracket
// at depth 0. An unmatched bracket leaves the input unchanged.
func canonicalMap(name string) string {
	depth := 0
	for i := 3; i < len(name); i++ {
		switch name[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				key := CanonicalTypeName(name[4:i])
				return "map[" + key + "]" + CanonicalTypeName(name[i+1:])
			}
		}
	}
	return name
}

// splitTypeArgs splits a generic argument list on commas at bracket depth 0
// and trims each segment.
func splitTypeArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" {
		args = append(args, last)
	}
	return args
}

// canonicalBase shortens a non-composite descriptor. Import paths are
// stripped to the final path segment only for standard namespace roots;
// everything else keeps its fully-qualified form.
func canonicalBase(name string) string {
	if alias, ok := wellKnownTypes[name]; ok {
		return alias
	}
	slash := strings.LastIndexByte(name, '/')
	if slash < 0 {
		return name
	}
	if isStandardRoot(name) {
		return name[slash+1:]
	}
	return name
}

// isStandardRoot reports whether the import path qualifying name belongs to
// the standard library (dotless first path segment) or one of the
// extended-standard roots.
func isStandardRoot(name string) bool {
	first := name
	if i := strings.IndexByte(name, '/'); i >= 0 {
		first = name[:i]
	}
	if !strings.Contains(first, ".") {
		return true
	}
	return strings.HasPrefix(name, "golang.org/x/") ||
		strings.HasPrefix(name, "google.golang.org/")
}
