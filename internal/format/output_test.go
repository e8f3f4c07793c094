package format

import (
	"bytes"
	"testing"
)

func TestWrite_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	v := map[string]any{"data": map[string]any{"tasks": []string{"a <b>"}}}
	if err := Write(&buf, v, "", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := buf.String(), "{\"data\":{\"tasks\":[\"a <b>\"]}}\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		v      any
		pretty bool
		want   string
	}{
		{name: "compact", v: map[string]any{"tasks": []string{"a", "b"}, "count": 2}, want: "{:count 2 :tasks [\"a\" \"b\"]}\n"},
		{name: "empty", v: map[string]any{"tasks": []string{}}, want: "{:tasks []}\n"},
		{name: "nil", v: nil, want: "nil\n"},
		{name: "pretty", v: map[string]any{"ok": true, "n": 1.5}, pretty: true, want: "{\n  :n 1.5\n  :ok true\n}\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := Write(&buf, tc.v, "edn", tc.pretty); err != nil {
				t.Fatalf("write: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()
	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
