package patch

import (
	"errors"
	"testing"

	"github.com/signadot/jvalue/ir"
	"github.com/signadot/jvalue/ir/kpath"
)

func mustParse(t *testing.T, s string) ir.Value {
	t.Helper()
	v, err := ir.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":[1,2]}`)
	ops := mustParse(t, `[
		{"op":"add","path":"/b/-","value":3},
		{"op":"replace","path":"/a","value":"x"},
		{"op":"remove","path":"/b/0"},
		{"op":"add","path":"/c","value":{"d":null}}
	]`)
	got, err := Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":"x","b":[2,3],"c":{"d":null}}`)
	if !got.Equal(want) {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	tests := []struct {
		name string
		ops  string
	}{
		{"not array", `{"op":"remove","path":"/a"}`},
		{"failed test", `[{"op":"test","path":"/a","value":2}]`},
		{"missing path", `[{"op":"remove","path":"/z"}]`},
		{"unknown op", `[{"op":"frob","path":"/a"}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Apply(doc, mustParse(t, tc.ops))
			if !errors.Is(err, ErrPatch) {
				t.Errorf("expected ErrPatch, got %v", err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{"a":1,"b":{"c":2,"d":3}}`)
	mp := mustParse(t, `{"b":{"c":null,"e":4},"f":"g"}`)
	got, err := Merge(doc, mp)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a":1,"b":{"d":3,"e":4},"f":"g"}`)
	if !got.Equal(want) {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestCreateMerge(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":{"c":2},"x":true}`)
	to := mustParse(t, `{"a":1,"b":{"c":3},"d":[1]}`)
	mp, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b":{"c":3},"d":[1],"x":null}`)
	if !mp.Equal(want) {
		t.Errorf("merge patch: got %s want %s", mp, want)
	}
	got, err := Merge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(to) {
		t.Errorf("got %s want %s", got, to)
	}
}

func TestCreate(t *testing.T) {
	from := mustParse(t, `{"a":1,"b":"abc","c":[1,2,3,4],"d":true}`)
	to := mustParse(t, `{"a":1,"b":"abXc","c":[1,5],"e":null}`)
	ops := Create(from, to)
	want := `[{"op":"replace","path":"/b","value":"abXc"},` +
		`{"op":"replace","path":"/c/1","value":5},` +
		`{"op":"remove","path":"/c/3"},` +
		`{"op":"remove","path":"/c/2"},` +
		`{"op":"remove","path":"/d"},` +
		`{"op":"add","path":"/e","value":null}]`
	if ops.String() != want {
		t.Errorf("got %s\nwant %s", ops, want)
	}
	got, err := Apply(from, ops)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(to) {
		t.Errorf("got %s want %s", got, to)
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		path kpath.Path
		want string
	}{
		{nil, ""},
		{kpath.Path{kpath.Key("a"), kpath.Index(0)}, "/a/0"},
		{kpath.Path{kpath.Key("a/b"), kpath.Key("m~n")}, "/a~1b/m~0n"},
		{kpath.Path{kpath.Key(""), kpath.Last()}, "//-"},
	}
	for _, tc := range tests {
		if got := Pointer(tc.path); got != tc.want {
			t.Errorf("%v: got %q want %q", tc.path, got, tc.want)
		}
	}
}
