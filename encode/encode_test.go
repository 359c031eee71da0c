package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jvalue/ir"
)

func TestEncode(t *testing.T) {
	v := ir.Obj(
		ir.KV("z", ir.FromInt(1)),
		ir.KV("a", ir.Arr(ir.FromString("x\ny"), ir.Null(), ir.FromBool(true))),
		ir.KV("m", ir.Obj()),
		ir.KV("e", ir.Arr()),
	)
	tests := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{
			name: "compact",
			want: `{"z":1,"a":["x\ny",null,true],"m":{},"e":[]}`,
		},
		{
			name: "pretty",
			opts: []EncodeOption{EncodePretty(true)},
			want: "{\n  \"z\": 1,\n  \"a\": [\n    \"x\\ny\",\n    null,\n    true\n  ],\n  \"m\": {},\n  \"e\": []\n}",
		},
		{
			name: "indent",
			opts: []EncodeOption{EncodeIndent(4)},
			want: "{\n    \"z\": 1,\n    \"a\": [\n        \"x\\ny\",\n        null,\n        true\n    ],\n    \"m\": {},\n    \"e\": []\n}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MustString(v, tc.opts...)
			if got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromString("a"), buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\"a\"\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeNumbers(t *testing.T) {
	v := ir.Arr(ir.FromFloat(0.5), ir.FromInt(-3))
	if got := MustString(v); got != "[0.5,-3]" {
		t.Errorf("got %s", got)
	}
	buf := bytes.NewBuffer(nil)
	err := Encode(ir.Arr(ir.FromFloat(math.Inf(1))), buf)
	if !errors.Is(err, ir.ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	v := ir.Obj(ir.KV("n", ir.FromInt(2)), ir.KV("s", ir.FromString("x")))
	got := MustString(v, EncodeColors(colors))
	want := `{<"n">:#2,<"s">:"x"}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if got := MustString(v, EncodeColors(colors), EncodeColors(nil)); got != `{"n":2,"s":"x"}` {
		t.Errorf("colors not cleared: %s", got)
	}
}

func TestAutoColorsNonTerminal(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.Arr(ir.FromInt(1)), buf, AutoColors(buf)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[1]\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNewColorsEscapesPercent(t *testing.T) {
	c := NewColors()
	got := c.Color(ir.StringType, ValueColor, `"100%"`)
	if !bytes.Contains([]byte(got), []byte(`"100%"`)) {
		t.Errorf("got %q", got)
	}
	if c.Get(ir.ArrayType, FieldColor)("x") != "x" {
		t.Error("expected default color function")
	}
}
