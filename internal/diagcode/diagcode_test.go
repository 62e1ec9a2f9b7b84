package diagcode

import "testing"

func TestRegistryCoversEveryCode(t *testing.T) {
	codes := []Code{
		UnsupportedConstruct, TypeMismatch, UnknownVariable,
		SolverTimeout, SolverInternal, SolverUnavailable,
	}
	for _, c := range codes {
		info, ok := Lookup(c)
		if !ok {
			t.Errorf("Lookup(%s): not found in registry", c)
			continue
		}
		if info.Code != c {
			t.Errorf("Registry[%s].Code = %s, want %s", c, info.Code, c)
		}
		if info.Description == "" {
			t.Errorf("Registry[%s].Description is empty", c)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	if _, ok := Lookup(Code("VER999")); ok {
		t.Error("Lookup of an unregistered code unexpectedly succeeded")
	}
}
