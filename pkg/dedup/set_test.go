package dedup

import (
	"fmt"
	"testing"
)

func TestSet(t *testing.T) {
	var s Set
	if s.Contains("go") {
		t.Fatalf("zero set should be empty")
	}
	if !s.MarkNew("go") {
		t.Fatalf("first MarkNew should report new")
	}
	if s.MarkNew("go") {
		t.Fatalf("second MarkNew should report seen")
	}
	s.Mark("go")
	s.Mark("stop")
	if !s.Contains("go") || !s.Contains("stop") || s.Len() != 2 {
		t.Fatalf("unexpected state: len=%d", s.Len())
	}
}

func TestSet_NoFalseNegatives(t *testing.T) {
	s := New()
	for i := 0; i < 1000; i++ {
		s.Mark(fmt.Sprintf("handler_%d", i))
	}
	for i := 0; i < 1000; i++ {
		if !s.Contains(fmt.Sprintf("handler_%d", i)) {
			t.Fatalf("missing handler_%d", i)
		}
	}
	var nilSet *Set
	if nilSet.Contains("x") || nilSet.Len() != 0 {
		t.Fatalf("nil set should read as empty")
	}
}
