package gomap

import (
	"errors"
	"testing"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/number"

	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := ir.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s): %v", s, err)
	}
	return v
}

func ptr[T any](x T) *T { return &x }

func TestOptionalIntsScenario(t *testing.T) {
	doc := parse(t, `{"ints":[1,2.0,"3",null]}`)
	got, err := OptionalSlice(Int)(doc.Key("ints"), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []*int{ptr(1), ptr(2), ptr(3), nil}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	dropped, err := Slice(Int)(doc.Key("ints"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, *dropped); diff != "" {
		t.Errorf("Slice mismatch (-want +got):\n%s", diff)
	}
}

func TestIntDecode(t *testing.T) {
	tests := []struct {
		in       string
		want     *int
		mismatch bool
		other    error
	}{
		{in: "7", want: ptr(7)},
		{in: "7.0", want: ptr(7)},
		{in: `"12"`, want: ptr(12)},
		{in: "null"},
		{in: "7.5", mismatch: true},
		{in: "1e30", mismatch: true},
		{in: "true", mismatch: true},
		{in: "[]", mismatch: true},
		{in: `"x"`, other: number.ErrMalformed},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Int(parse(t, tc.in), nil)
			switch {
			case tc.mismatch:
				var te *TypeError
				if !errors.As(err, &te) || !errors.Is(err, ir.ErrTypeMismatch) {
					t.Fatalf("got %v, %v", got, err)
				}
				if te.Expected != "int" {
					t.Errorf("Expected = %q", te.Expected)
				}
				if !te.Value.Equal(parse(t, tc.in)) {
					t.Errorf("Value = %s", te.Value)
				}
			case tc.other != nil:
				if !errors.Is(err, tc.other) || errors.Is(err, ir.ErrTypeMismatch) {
					t.Fatalf("got %v", err)
				}
			default:
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestPrimitives(t *testing.T) {
	if s, err := String(parse(t, "1.50"), nil); err != nil || *s != "1.50" {
		t.Errorf("String(1.50) = %v, %v", s, err)
	}
	if _, err := String(parse(t, "true"), nil); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("String(true) error = %v", err)
	}
	if b, err := Bool(parse(t, "false"), nil); err != nil || *b {
		t.Errorf("Bool(false) = %v, %v", b, err)
	}
	if f, err := Float64(parse(t, `"0.25"`), nil); err != nil || *f != 0.25 {
		t.Errorf("Float64 = %v, %v", f, err)
	}
	if f, err := Float32(parse(t, "0.5"), nil); err != nil || *f != 0.5 {
		t.Errorf("Float32 = %v, %v", f, err)
	}
	if i, err := Int32(parse(t, "4294967296"), nil); err == nil {
		t.Errorf("Int32 overflow = %v", *i)
	}
	if n, err := Number(parse(t, `"1e400"`), nil); err != nil || n.String() != "1E+400" {
		t.Errorf("Number = %v, %v", n, err)
	}
	if v, err := Value(ir.Null(), nil); err != nil || v == nil || !v.IsNull() {
		t.Errorf("Value(null) = %v, %v", v, err)
	}
}

type color string

const (
	red   color = "red"
	green color = "green"
)

type level int8

func TestKinds(t *testing.T) {
	c, err := StringKind[color](parse(t, `"red"`), nil)
	if err != nil || *c != red {
		t.Errorf("got %v, %v", c, err)
	}
	dec := Enum(StringKind[color], red, green)
	if _, err := dec(parse(t, `"blue"`), nil); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("Enum(blue) error = %v", err)
	}
	if x, err := dec(parse(t, `"green"`), nil); err != nil || *x != green {
		t.Errorf("Enum(green) = %v, %v", x, err)
	}
	if l, err := IntKind[level](parse(t, "5"), nil); err != nil || *l != 5 {
		t.Errorf("IntKind = %v, %v", l, err)
	}
	if _, err := IntKind[level](parse(t, "500"), nil); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("IntKind overflow error = %v", err)
	}
}

func TestContainers(t *testing.T) {
	m, err := Map(Int)(parse(t, `{"a":1,"b":null,"c":"2"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "c": 2}, *m); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
	om, err := OptionalMap(Int)(parse(t, `{"a":1,"b":null}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]*int{"a": ptr(1), "b": nil}, *om); diff != "" {
		t.Errorf("OptionalMap mismatch (-want +got):\n%s", diff)
	}
	s, err := Set(String)(parse(t, `["a","b","a",null]`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]struct{}{"a": {}, "b": {}}, *s); diff != "" {
		t.Errorf("Set mismatch (-want +got):\n%s", diff)
	}
	if got, err := Slice(Int)(ir.Null(), nil); err != nil || got != nil {
		t.Errorf("Slice(null) = %v, %v", got, err)
	}
	if _, err := Slice(Int)(parse(t, `{}`), nil); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("Slice(object) error = %v", err)
	}
	o, err := Optional(Int)(ir.Null(), nil)
	if err != nil || o == nil || *o != nil {
		t.Errorf("Optional(null) = %v, %v", o, err)
	}
}

func TestErrorPath(t *testing.T) {
	v := parse(t, `{"rows": [[1, 2], [3, "x"]]}`)
	_, err := Map(Slice(Slice(Int)))(v, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "rows[1][1]" {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, number.ErrMalformed) {
		t.Errorf("lost cause: %v", err)
	}

	_, err = Map(Slice(Int))(parse(t, `{"a": [1, true]}`), nil)
	var te *TypeError
	if !errors.As(err, &te) || te.FieldPath != "a[1]" {
		t.Fatalf("got %v", err)
	}
	if got := te.Error(); got != "type error at a[1]: expected int, got Bool true" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAttemptOrder(t *testing.T) {
	// "12" decodes both as a string and as an int; the first attempt wins
	v := parse(t, `"12"`)
	asString := func() (any, error) {
		s, err := String(v, nil)
		if err != nil {
			return nil, err
		}
		return *s, nil
	}
	asInt := func() (any, error) {
		i, err := Int(v, nil)
		if err != nil {
			return nil, err
		}
		return *i, nil
	}
	for range 10 {
		got, err := ir.Attempt(asString, asInt)
		if err != nil || got != "12" {
			t.Fatalf("got %v, %v", got, err)
		}
		got, err = ir.Attempt(asInt, asString)
		if err != nil || got != 12 {
			t.Fatalf("got %v, %v", got, err)
		}
	}
}

func TestEncoders(t *testing.T) {
	enc := EncodeMap(EncodeSlice(EncodeOptional(EncodeInt[int])))
	v, err := enc(map[string][]*int{"b": {ptr(1), nil}, "a": nil}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != `{"a":null,"b":[1,null]}` {
		t.Errorf("got %s", got)
	}
	sv, err := EncodeSet(EncodeString[string])(map[string]struct{}{"z": {}, "a": {}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := sv.String(); got != `["a","z"]` {
		t.Errorf("got %s", got)
	}
	ev, err := EncodeSet(EncodeString[string])(map[string]struct{}{}, nil)
	if err != nil || ev.String() != "[]" {
		t.Errorf("empty set = %s, %v", ev, err)
	}
	if fv, _ := EncodeFloat64(0.5, nil); fv.String() != "0.5" {
		t.Errorf("got %s", fv)
	}
}

func TestJSONHelpers(t *testing.T) {
	got, err := DecodeJSON([]byte(`[1, null, 3]`), OptionalSlice(Int64), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]*int64{ptr(int64(1)), nil, ptr(int64(3))}, *got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	d, err := EncodeJSON([]string{"a"}, EncodeSlice(EncodeString[string]), nil)
	if err != nil || string(d) != `["a"]` {
		t.Errorf("got %s, %v", d, err)
	}
	if _, err := DecodeJSON([]byte(`[`), Int, nil); !errors.Is(err, ir.ErrParse) {
		t.Errorf("got %v", err)
	}
}
