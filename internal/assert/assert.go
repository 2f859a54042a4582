package assert

import (
	"reflect"
	"testing"
)

func Equal(t testing.TB, a, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("%#v != %#v", a, b)
	}
}

func DeepEqual(t testing.TB, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%#v != %#v", a, b)
	}
}

func That(t testing.TB, v bool) {
	t.Helper()
	if !v {
		t.Fatal("expected condition to be true")
	}
}

func NoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error: %v", err)
	}
}

func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
}

func Nil(t testing.TB, v interface{}) {
	t.Helper()
	if v != nil && !reflect.ValueOf(v).IsNil() {
		t.Fatalf("expected nil: %#v", v)
	}
}
