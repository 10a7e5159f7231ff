package http

import "testing"

func TestDecodeDocument(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"text", `{"kind":"text","s":"hello"}`, false},
		{"cond", `{"kind":"cond","small":" ","cont":"","tail":""}`, false},
		{"empty", `{"kind":"empty"}`, false},
		{"br", `{"kind":"br"}`, false},
		{"dot", `{"kind":"dot"}`, false},
		{
			"concat",
			`{"kind":"concat","children":[{"kind":"text","s":"a"},{"kind":"text","s":"b"}]}`,
			false,
		},
		{
			"group",
			`{"kind":"group","child":{"kind":"text","s":"a"}}`,
			false,
		},
		{
			"nest",
			`{"kind":"nest","child":{"kind":"text","s":"a"}}`,
			false,
		},
		{"unknown kind", `{"kind":"bogus"}`, true},
		{"group missing child", `{"kind":"group"}`, true},
		{"nest missing child", `{"kind":"nest"}`, true},
		{"malformed json", `{`, true},
	}

	for _, c := range cases {
		_, err := DecodeDocument([]byte(c.raw))
		if c.wantErr && err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
		if !c.wantErr && err != nil {
			t.Errorf("%s: didn't expect an error, got %s", c.name, err)
		}
	}
}
