package ui

import "testing"

func TestStyleStackInheritance(t *testing.T) {
	var s StyleStack

	top := s.PushInherited()
	if !top.Equal(DefaultStyle()) {
		t.Errorf("first push should clone the default style, got %+v", *top)
	}

	top.FG = Red
	top.Padding = 2

	child := s.PushInherited()
	if child.FG != Red || child.Padding != 2 {
		t.Errorf("child should inherit parent overrides, got %+v", *child)
	}

	child.FG = Blue
	popped := s.Pop()
	if popped.FG != Blue {
		t.Errorf("popped style should carry the child override, got %+v", popped)
	}
	if s.Current().FG != Red {
		t.Errorf("parent style should be unaffected by child override, got %+v", *s.Current())
	}
}

func TestStyleStackDepth(t *testing.T) {
	var s StyleStack
	if s.Depth() != 0 {
		t.Fatalf("new stack depth = %d, want 0", s.Depth())
	}
	s.PushInherited()
	s.PushInherited()
	if s.Depth() != 2 {
		t.Errorf("depth after two pushes = %d, want 2", s.Depth())
	}
	s.Pop()
	s.Pop()
	if s.Depth() != 0 {
		t.Errorf("depth after balanced pops = %d, want 0", s.Depth())
	}
}

func TestStyleStackPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("pop on empty stack should panic")
		}
	}()
	var s StyleStack
	s.Pop()
}

func TestStyleStackResetKeepsNothing(t *testing.T) {
	var s StyleStack
	s.PushInherited().FG = Red
	s.Reset()
	if s.Depth() != 0 {
		t.Fatalf("depth after reset = %d, want 0", s.Depth())
	}
	if got := s.PushInherited(); got.FG != DefaultColor() {
		t.Errorf("push after reset should start from default, got %+v", *got)
	}
}

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)
	if !a.Has(AttrBold) || !a.Has(AttrUnderline) {
		t.Errorf("attribute set missing added attributes: %b", a)
	}
	if a.Has(AttrItalic) {
		t.Errorf("attribute set has italic unexpectedly: %b", a)
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without should remove the attribute")
	}
}

func TestHexColor(t *testing.T) {
	c := Hex(0xFF5500)
	if c.Mode != ColorRGB || c.R != 0xFF || c.G != 0x55 || c.B != 0x00 {
		t.Errorf("Hex(0xFF5500) = %+v", c)
	}
}
