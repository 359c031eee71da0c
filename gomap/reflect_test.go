package gomap

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/number"

	"github.com/google/go-cmp/cmp"
)

type version int

// point decodes from either {"x":..,"y":..} or, with version 1 context,
// from a two element array.
type point struct {
	X, Y int
}

func (p *point) DecodeValue(v ir.Value, ctx any) (bool, error) {
	if v.IsNull() {
		return false, nil
	}
	if ctx != nil {
		ver, err := ContextAs[version](ctx)
		if err != nil {
			return false, err
		}
		if ver == 1 {
			xy, err := Slice(Require(Int))(v, ctx)
			if err != nil {
				return false, err
			}
			if len(*xy) != 2 {
				return false, &TypeError{Expected: "pair", Actual: v.String(), Value: v}
			}
			p.X, p.Y = (*xy)[0], (*xy)[1]
			return true, nil
		}
	}
	x, err := Field(v, "x", Require(Int), ctx)
	if err != nil {
		return false, err
	}
	y, err := Field(v, "y", Require(Int), ctx)
	if err != nil {
		return false, err
	}
	p.X, p.Y = *x, *y
	return true, nil
}

func (p point) EncodeValue(ctx any) (ir.Value, error) {
	if ctx != nil {
		if _, err := ContextAs[version](ctx); err != nil {
			return ir.Null(), err
		}
	}
	return ir.Obj(ir.KV("x", ir.FromInt(int64(p.X))), ir.KV("y", ir.FromInt(int64(p.Y)))), nil
}

func TestDecoderProtocol(t *testing.T) {
	p, err := Of[point]()(parse(t, `{"x": 1, "y": "2"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&point{1, 2}, p); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if p, err := Of[point]()(ir.Null(), nil); p != nil || err != nil {
		t.Errorf("null gave %v, %v", p, err)
	}
	p, err = Of[point]()(parse(t, `[3, 4]`), version(1))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&point{3, 4}, p); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	_, err = Of[point]()(parse(t, `{"x": 1}`), nil)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("missing y gave %v", err)
	}
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "y" {
		t.Errorf("missing y gave %v", err)
	}

	_, err = Of[point]()(parse(t, `{}`), "v1")
	var ce *ContextError
	if !errors.As(err, &ce) || !errors.Is(err, ErrUnexpectedContext) {
		t.Fatalf("got %v", err)
	}
	if ce.Want != "gomap.version" || ce.Got != "string" {
		t.Errorf("got %+v", ce)
	}
}

func TestEncoderProtocol(t *testing.T) {
	v, err := EncodeSlice(EncodeOf[point]())([]point{{1, 2}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != `[{"x":1,"y":2}]` {
		t.Errorf("got %s", got)
	}
	_, err = EncodeSlice(EncodeOf[point]())([]point{{1, 2}}, 3.5)
	var me *MarshalError
	if !errors.As(err, &me) || me.FieldPath != "[0]" || !errors.Is(err, ErrUnexpectedContext) {
		t.Errorf("got %v", err)
	}
}

type base struct {
	ID string `json:"id"`
}

type shape struct {
	base
	Name    string            `json:"name"`
	Origin  *point            `json:"origin"`
	Points  []point           `json:"points,omitempty"`
	Tags    map[string]string `json:"tags"`
	Weight  float64           `json:"weight"`
	Count   uint8             `json:"count"`
	Raw     ir.Value          `json:"raw"`
	Exact   number.Number     `json:"exact"`
	Extra   any               `json:"extra"`
	Skip    string            `json:"-"`
	private int
}

func TestFromValue(t *testing.T) {
	v := parse(t, `{
		"id": "s1",
		"name": "tri",
		"origin": {"x": 0, "y": 1},
		"points": [{"x": 1, "y": 1}, {"x": 2, "y": 2}],
		"tags": {"k": "v"},
		"weight": 1.5,
		"count": 3,
		"raw": [true, null],
		"exact": 0.10,
		"extra": {"n": 1},
		"Skip": "no",
		"unknown": 1
	}`)
	var got shape
	if err := FromValue(v, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "s1" || got.Name != "tri" || got.Weight != 1.5 || got.Count != 3 || got.Skip != "" {
		t.Errorf("got %+v", got)
	}
	if diff := cmp.Diff(&point{0, 1}, got.Origin); diff != "" {
		t.Errorf("origin mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]point{{1, 1}, {2, 2}}, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if !got.Raw.Equal(ir.Arr(ir.FromBool(true), ir.Null())) {
		t.Errorf("raw = %s", got.Raw)
	}
	if !got.Exact.Equal(number.MustParse("0.1")) || got.Exact.String() != "0.10" {
		t.Errorf("exact = %s", got.Exact)
	}
	m, ok := got.Extra.(map[string]any)
	if !ok || m["n"] != json.Number("1") {
		t.Errorf("extra = %#v", got.Extra)
	}
}

func TestFromValueErrors(t *testing.T) {
	var s shape
	err := FromValue(parse(t, `{"points": [{"x": 1, "y": 1}, {"x": 1}]}`), &s)
	var ue *UnmarshalError
	if !errors.As(err, &ue) || ue.FieldPath != "points[1].y" {
		t.Errorf("got %v", err)
	}
	err = FromValue(parse(t, `{"count": 300}`), &s)
	var te *TypeError
	if !errors.As(err, &te) || te.FieldPath != "count" {
		t.Errorf("got %v", err)
	}
	if err := FromValue(parse(t, `1`), s); err == nil {
		t.Errorf("non-pointer accepted")
	}
	var m map[int]string
	if err := FromValue(parse(t, `{}`), &m); err == nil {
		t.Errorf("int keyed map accepted")
	}
}

func TestFromValueNull(t *testing.T) {
	s := shape{Name: "x", Origin: &point{1, 1}}
	if err := FromValue(parse(t, `{"name": null, "origin": null}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "" || s.Origin != nil {
		t.Errorf("got %+v", s)
	}
}

func TestToValue(t *testing.T) {
	s := shape{
		base:   base{ID: "s1"},
		Name:   "tri",
		Origin: &point{0, 1},
		Tags:   map[string]string{"b": "2", "a": "1"},
		Weight: 0.5,
		Raw:    ir.Arr(),
		Exact:  number.MustParse("1.10"),
		Skip:   "no",
	}
	v, err := ToValue(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"s1","name":"tri","origin":{"x":0,"y":1},"tags":{"a":"1","b":"2"},"weight":0.5,"count":0,"raw":[],"exact":1.10,"extra":null}`
	if got := v.String(); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}

	v, err = ToValue(s, OmitNull(true))
	if err != nil {
		t.Fatal(err)
	}
	if v.Has("extra") {
		t.Errorf("OmitNull kept extra: %s", v)
	}

	var back shape
	if err := FromValue(v, &back); err != nil {
		t.Fatal(err)
	}
	s.Skip = ""
	if diff := cmp.Diff(s, back, cmp.AllowUnexported(shape{}), cmp.Comparer(func(a, b ir.Value) bool { return a.Equal(b) }), cmp.Comparer(func(a, b number.Number) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldTag(t *testing.T) {
	type row struct {
		A int `db:"alpha"`
		B int
	}
	v, err := ToValue(row{1, 2}, WithFieldTag("db"))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.String(); got != `{"alpha":1,"B":2}` {
		t.Errorf("got %s", got)
	}
	var r row
	if err := FromValue(v, &r, WithFieldTag("db")); err != nil {
		t.Fatal(err)
	}
	if r != (row{1, 2}) {
		t.Errorf("got %+v", r)
	}
}

func TestWithContext(t *testing.T) {
	var p point
	if err := FromValue(parse(t, `[5, 6]`), &p, WithContext(version(1))); err != nil {
		t.Fatal(err)
	}
	if p != (point{5, 6}) {
		t.Errorf("got %+v", p)
	}
}
