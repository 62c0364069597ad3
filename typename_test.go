package liberror_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charliethomson/liberror"
)

type pair[K comparable, V any] struct {
	key K
	val V
}

func TestDescriptorOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "nil"},
		{name: "int", value: 42, want: "int"},
		{name: "string", value: "x", want: "string"},
		{name: "pointer", value: new(int), want: "*int"},
		{name: "slice", value: []int{}, want: "[]int"},
		{name: "array", value: [5]int{}, want: "[5]int"},
		{name: "map", value: map[string][]int{}, want: "map[string][]int"},
		{name: "chan", value: make(chan int), want: "chan int"},
		{name: "stdlib named", value: time.Second, want: "time.Duration"},
		{name: "stdlib multi-segment path", value: json.SyntaxError{}, want: "encoding/json.SyntaxError"},
		{name: "pointer to stdlib type", value: &url.URL{}, want: "*net/url.URL"},
		{name: "errors.New", value: errors.New("boom"), want: "*errors.errorString"},
		{name: "map with qualified value", value: map[string]url.URL{}, want: "map[string]net/url.URL"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := liberror.DescriptorOf(tt.value)
			if got != tt.want {
				t.Errorf("DescriptorOf(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestDescriptorOf_DirectionalChannels(t *testing.T) {
	t.Parallel()

	var recv <-chan string
	var send chan<- string
	if got := liberror.DescriptorOf(recv); got != "<-chan string" {
		t.Errorf("recv chan descriptor = %q, want %q", got, "<-chan string")
	}
	if got := liberror.DescriptorOf(send); got != "chan<- string" {
		t.Errorf("send chan descriptor = %q, want %q", got, "chan<- string")
	}
}

func TestDescriptorOf_GenericInstantiation(t *testing.T) {
	t.Parallel()

	got := liberror.DescriptorOf(pair[string, int]{key: "a", val: 1})
	if !strings.Contains(got, "pair[") {
		t.Errorf("descriptor %q should carry the instantiated argument list", got)
	}
	if !strings.Contains(got, "liberror") {
		t.Errorf("descriptor %q should be qualified by the defining package", got)
	}
}

func TestCanonicalTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "predeclared", input: "int", want: "int"},
		{name: "errors.New wrapper", input: "*errors.errorString", want: "error"},
		{name: "fmt wrap wrapper", input: "*fmt.wrapError", want: "error"},
		{name: "errors.Join wrapper", input: "*errors.joinError", want: "error"},
		{name: "empty interface", input: "interface {}", want: "any"},
		{name: "single-segment stdlib", input: "time.Duration", want: "time.Duration"},
		{name: "multi-segment stdlib", input: "encoding/json.SyntaxError", want: "json.SyntaxError"},
		{name: "pointer", input: "*encoding/json.SyntaxError", want: "*json.SyntaxError"},
		{name: "slice", input: "[]net/url.URL", want: "[]url.URL"},
		{name: "fixed-size array", input: "[16]net/url.URL", want: "[16]url.URL"},
		{name: "map", input: "map[string][]encoding/json.RawMessage", want: "map[string][]json.RawMessage"},
		{name: "map with qualified key", input: "map[net/url.URL]encoding/json.Number", want: "map[url.URL]json.Number"},
		{name: "recv chan", input: "<-chan encoding/json.Delim", want: "<-chan json.Delim"},
		{name: "send chan", input: "chan<- net/http.Handler", want: "chan<- http.Handler"},
		{name: "plain chan", input: "chan net/http.Handler", want: "chan http.Handler"},
		{name: "extended-standard root", input: "golang.org/x/text/language.Tag", want: "language.Tag"},
		{name: "third-party stays qualified", input: "github.com/acme/payments.DeclinedError", want: "github.com/acme/payments.DeclinedError"},
		{
			name:  "generic with qualified args",
			input: "github.com/acme/collections.Pair[encoding/json.Number,[]net/url.URL]",
			want:  "github.com/acme/collections.Pair[json.Number, []url.URL]",
		},
		{
			name:  "nested generic args split at depth zero",
			input: "Cache[map[string]github.com/acme/db.Row,encoding/json.Number]",
			want:  "Cache[map[string]github.com/acme/db.Row, json.Number]",
		},
		{name: "already minimal composite", input: "map[string][]int", want: "map[string][]int"},
		{name: "malformed array size", input: "[abc]int", want: "[abc]int"},
		{name: "unterminated array", input: "[5int", want: "[5int"},
		{name: "unterminated map", input: "map[string", want: "map[string"},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := liberror.CanonicalTypeName(tt.input)
			if got != tt.want {
				t.Errorf("CanonicalTypeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Repeated application must be a no-op.
			if again := liberror.CanonicalTypeName(got); again != got {
				t.Errorf("CanonicalTypeName not idempotent: %q -> %q -> %q", tt.input, got, again)
			}
		})
	}
}

func TestCanonicalTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "errors.New collapses", value: errors.New("boom"), want: "error"},
		{name: "stdlib path stripped", value: &json.SyntaxError{}, want: "*json.SyntaxError"},
		{name: "composite", value: map[string][]int{}, want: "map[string][]int"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := liberror.CanonicalTypeOf(tt.value); got != tt.want {
				t.Errorf("CanonicalTypeOf(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}

	t.Run("generic instantiation", func(t *testing.T) {
		t.Parallel()
		got := liberror.CanonicalTypeOf(pair[string, int]{})
		if !strings.HasSuffix(got, ".pair[string, int]") {
			t.Errorf("CanonicalTypeOf(pair) = %q, want suffix %q", got, ".pair[string, int]")
		}
	})
}
