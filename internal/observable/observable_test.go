package observable

import "testing"

func TestValueGetSet(t *testing.T) {
	c := New(3)
	if c.Get() != 3 {
		t.Fatalf("expected 3, got %d", c.Get())
	}
	c.Set(7)
	if c.Get() != 7 {
		t.Fatalf("expected 7, got %d", c.Get())
	}
}

func TestValueWatchOrder(t *testing.T) {
	c := New("a")
	var seen []string
	c.Watch(func(v string) { seen = append(seen, "first:"+v) })
	c.Watch(func(v string) { seen = append(seen, "second:"+v) })
	c.Set("b")
	if len(seen) != 2 || seen[0] != "first:b" || seen[1] != "second:b" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestDerivedRecomputesOnGet(t *testing.T) {
	c := New(2)
	d := Derive(func() int { return c.Get() * 10 }, c)
	if d.Get() != 20 {
		t.Fatalf("expected 20, got %d", d.Get())
	}
	c.Set(5)
	if d.Get() != 50 {
		t.Fatalf("expected 50 after source change, got %d", d.Get())
	}
}

func TestDerivedNotifiesWatchers(t *testing.T) {
	a := New(1)
	b := New(2)
	d := Derive(func() int { return a.Get() + b.Get() }, a, b)

	var got []int
	d.Watch(func(v int) { got = append(got, v) })
	a.Set(10)
	b.Set(20)
	if len(got) != 2 || got[0] != 12 || got[1] != 30 {
		t.Fatalf("unexpected derived notifications: %v", got)
	}
}

func TestDerivedChaining(t *testing.T) {
	c := New(4)
	half := Derive(func() int { return c.Get() / 2 }, c)
	quarter := Derive(func() int { return half.Get() / 2 }, half)

	var got int
	quarter.Watch(func(v int) { got = v })
	c.Set(16)
	if got != 4 {
		t.Fatalf("expected chained derived to see 4, got %d", got)
	}
}
