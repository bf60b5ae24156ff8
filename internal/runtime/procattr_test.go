//go:build linux

package runtime

import (
	"syscall"
	"testing"
)

func TestChildProcAttrSetsParentDeathSignal(t *testing.T) {
	attr := ChildProcAttr()
	if attr == nil {
		t.Fatal("expected non-nil SysProcAttr on linux")
	}
	if attr.Pdeathsig != syscall.SIGTERM {
		t.Fatalf("Pdeathsig = %v, want SIGTERM", attr.Pdeathsig)
	}
}
