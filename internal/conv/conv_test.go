package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(0); got != 0 {
		t.Errorf("IntToUint32(0) = %d, want 0", got)
	}
	if got := IntToUint32(42); got != 42 {
		t.Errorf("IntToUint32(42) = %d, want 42", got)
	}
}

func TestIntToUint32_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative input")
		}
	}()
	IntToUint32(-1)
}

func TestIntToUint32_PanicsOnOverflow(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("platform int too small to exercise overflow")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overflow")
		}
	}()
	IntToUint32(int(math.MaxUint32) + 1)
}
