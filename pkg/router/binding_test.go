package router

import (
	"reflect"
	"testing"
)

func TestEventTypeOf(t *testing.T) {
	if typ, ok := EventTypeOf("on:click"); !ok || typ != "click" {
		t.Fatalf("EventTypeOf(on:click) = %q, %v", typ, ok)
	}
	if _, ok := EventTypeOf("onclick"); ok {
		t.Fatal("onclick is not a binding attribute")
	}
	if _, ok := EventTypeOf("on:"); ok {
		t.Fatal("on: with no event type is not a binding attribute")
	}
}

func TestParseBinding(t *testing.T) {
	cases := []struct {
		value string
		want  Binding
	}{
		{"", Binding{}},
		{"/submit", Binding{Method: "submit"}},
		{"#modal/close", Binding{Selector: "#modal", Method: "close"}},
		{".card/open", Binding{Selector: ".card", Method: "open"}},
		{".card", Binding{Selector: ".card"}},
		{"/toggle/3", Binding{Method: "toggle", Data: 3, HasData: true}},
		{"/set/true", Binding{Method: "set", Data: true, HasData: true}},
		{"/set/1.5", Binding{Method: "set", Data: 1.5, HasData: true}},
		{"/set/hello", Binding{Method: "set", Data: "hello", HasData: true}},
		// Slash payloads are the greedy remainder and may contain anything.
		{"/nav/a/b", Binding{Method: "nav", Data: "a/b", HasData: true}},
		{
			"/submit?amount=5&unit=px&dry=false",
			Binding{
				Method:  "submit",
				Data:    map[string]any{"amount": 5, "unit": "px", "dry": false},
				HasData: true,
			},
		},
		// Empty query payload is present but empty.
		{"/go?", Binding{Method: "go", Data: map[string]any{}, HasData: true}},
		// Empty pairs and empty keys are skipped; a valueless key keeps "".
		{"/go?&=x&k", Binding{Method: "go", Data: map[string]any{"k": ""}, HasData: true}},
		// Inherited grammar ambiguity: a bare three-segment value reads as
		// selector/method/payload.
		{"a/b/c", Binding{Selector: "a", Method: "b", Data: "c", HasData: true}},
	}
	for _, tc := range cases {
		got := ParseBinding(tc.value)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseBinding(%q) = %+v, want %+v", tc.value, got, tc.want)
		}
	}
}

func TestCoerceOrder(t *testing.T) {
	// Integers win over floats; only exact true/false become booleans.
	if v := coerce("7"); v != 7 {
		t.Fatalf("coerce(7) = %v (%T)", v, v)
	}
	if v := coerce("True"); v != "True" {
		t.Fatalf("coerce(True) = %v, case-sensitive booleans expected", v)
	}
	if v := coerce("007"); v != 7 {
		t.Fatalf("coerce(007) = %v (%T)", v, v)
	}
}

func TestExportName(t *testing.T) {
	if got := exportName("submitOrder"); got != "SubmitOrder" {
		t.Fatalf("exportName = %q", got)
	}
	if got := exportName(""); got != "" {
		t.Fatalf("exportName(empty) = %q", got)
	}
}
