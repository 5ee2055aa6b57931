package util

import (
	"testing"
)

func TestIfThenElse(t *testing.T) {
	if IfThenElse(true, 1, 2) != 1 {
		t.Error("IfThenElse(true, 1, 2) should be 1")
	}
	if IfThenElse(false, 1, 2) != 2 {
		t.Error("IfThenElse(false, 1, 2) should be 2")
	}
	if IfThenElse(true, "a", "b") != "a" {
		t.Error("IfThenElse(true, 'a', 'b') should be 'a'")
	}
}

func TestCeilDiv(t *testing.T) {
	if CeilDiv(8, 4) != 2 {
		t.Error("CeilDiv(8, 4) should be 2")
	}
	if CeilDiv(9, 4) != 3 {
		t.Error("CeilDiv(9, 4) should be 3")
	}
	if CeilDiv(uint32(1), uint32(4)) != 1 {
		t.Error("CeilDiv(1, 4) should be 1")
	}
}
