package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/signadot/jvalue/number"

	"github.com/cockroachdb/apd/v2"
	"github.com/google/go-cmp/cmp"
)

type myNumber string

func (n myNumber) String() string { return string(n) }

func (n myNumber) Int64() (int64, error) { return 0, errors.New("unused") }

func (n myNumber) Float64() (float64, error) { return 0, errors.New("unused") }

type label string

func TestFromDynamic(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, FromBool(true)},
		{"string", "s", FromString("s")},
		{"int", 3, FromInt(3)},
		{"int8", int8(-3), FromInt(-3)},
		{"uint64", uint64(math.MaxUint64), FromNumber(number.FromUint64(math.MaxUint64))},
		{"float32", float32(0.5), FromNumber(number.MustParse("0.5"))},
		{"float64", 2.0, FromInt(2)},
		{"json.Number", json.Number("12345678901234567890.5"), FromNumber(number.MustParse("12345678901234567890.5"))},
		{"literal", myNumber("1e3"), FromInt(1000)},
		{"apd", apd.New(15, -1), FromNumber(number.MustParse("1.5"))},
		{"Value", Arr(Null()), Arr(Null())},
		{"[]any", []any{1, "a", nil}, Arr(FromInt(1), FromString("a"), Null())},
		{"[]string", []string{"a", "b"}, Arr(FromString("a"), FromString("b"))},
		{"array", [2]int{1, 2}, Arr(FromInt(1), FromInt(2))},
		{"map", map[string]any{"b": 1, "a": []any{}}, Obj(KV("a", Arr()), KV("b", FromInt(1)))},
		{"named keys", map[label]int{"x": 1}, Obj(KV("x", FromInt(1)))},
		{"named string", label("y"), FromString("y")},
		{"nil slice", []int(nil), Null()},
		{"nil []any", []any(nil), Null()},
		{"empty []any", []any{}, Arr()},
		{"nil []Value", []Value(nil), Null()},
		{"nil map", map[string]any(nil), Null()},
		{"nil map of Value", map[string]Value(nil), Null()},
		{"empty map", map[string]any{}, Obj()},
		{"pointer", &[]int{1}, Arr(FromInt(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromDynamic(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got, valueCmp); diff != "" {
				t.Errorf("FromDynamic(%v) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestFromDynamicUnrecognized(t *testing.T) {
	for _, in := range []any{
		struct{}{},
		map[int]string{1: "a"},
		[]any{1, make(chan int)},
		func() {},
		complex(1, 2),
	} {
		_, err := FromDynamic(in)
		if !errors.Is(err, ErrUnrecognizedShape) {
			t.Errorf("FromDynamic(%T) error = %v", in, err)
			continue
		}
		var se *ShapeError
		if !errors.As(err, &se) {
			t.Errorf("FromDynamic(%T) error is not *ShapeError", in)
		}
	}
}

func TestFromDynamicMalformedLiteral(t *testing.T) {
	_, err := FromDynamic(json.Number("1.2.3"))
	if !errors.Is(err, number.ErrMalformed) {
		t.Errorf("got %v", err)
	}
}

func TestToDynamicRoundTrip(t *testing.T) {
	v := Obj(
		KV("n", FromNumber(number.MustParse("0.1"))),
		KV("a", Arr(FromBool(false), Null(), FromString("s"))),
		KV("o", Obj()),
	)
	d := v.ToDynamic()
	want := map[string]any{
		"n": json.Number("0.1"),
		"a": []any{false, nil, "s"},
		"o": map[string]any{},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("ToDynamic mismatch (-want +got):\n%s", diff)
	}
	back, err := FromDynamic(d)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(v) {
		t.Errorf("got %s, want %s", back, v)
	}
}
