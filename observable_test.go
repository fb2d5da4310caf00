package ui

import (
	"sync"
	"testing"
)

func TestObservableGetSet(t *testing.T) {
	o := NewObservable(3)
	if o.Get() != 3 {
		t.Errorf("initial = %d, want 3", o.Get())
	}
	o.Set(7)
	if o.Get() != 7 {
		t.Errorf("after Set = %d, want 7", o.Get())
	}
}

func TestObservableOnChange(t *testing.T) {
	o := NewObservable("calm")
	var seen []string
	o.OnChange(func(v string) { seen = append(seen, v) })

	o.Set("storm")
	o.Update(func(v string) string { return v + "!" })

	if len(seen) != 2 || seen[0] != "storm" || seen[1] != "storm!" {
		t.Errorf("listener saw %v", seen)
	}
}

func TestObservableConcurrentUpdates(t *testing.T) {
	o := NewObservable(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				o.Update(func(v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()
	if got := o.Get(); got != 800 {
		t.Errorf("counter = %d, want 800", got)
	}
}
