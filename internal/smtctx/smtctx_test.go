package smtctx

import (
	"testing"
	"time"
)

func TestIsAvailableMemoized(t *testing.T) {
	first := IsAvailable()
	second := IsAvailable()
	if first != second {
		t.Error("IsAvailable() is not stable across calls")
	}
}

func TestCreateAndClose(t *testing.T) {
	ctx, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ctx.Z3() == nil {
		t.Fatal("Z3() returned nil before Close")
	}
	ctx.Close()
	ctx.Close() // idempotent
}

func TestUseAfterClosePanics(t *testing.T) {
	ctx, err := Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	ctx.Close()
	defer func() {
		if recover() == nil {
			t.Error("Z3() after Close did not panic")
		}
	}()
	ctx.Z3()
}

func TestCreateWithTimeout(t *testing.T) {
	ctx, err := CreateWithTimeout(250 * time.Millisecond)
	if err != nil {
		t.Fatalf("CreateWithTimeout: %v", err)
	}
	defer ctx.Close()
	if ctx.Z3() == nil {
		t.Fatal("Z3() returned nil")
	}
}
