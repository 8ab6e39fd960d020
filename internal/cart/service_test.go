package cart_test

import (
	"errors"
	"reflect"
	"testing"

	"xtreme/internal/cart"
	"xtreme/internal/storage"
)

func newService(t *testing.T) (*cart.Service, *storage.Memory) {
	t.Helper()
	mem := storage.NewMemory()
	return cart.NewService(cart.NewStore(mem, "")), mem
}

func hoodie(qty int) cart.Candidate {
	return cart.Candidate{ID: "midnight", Name: "Hoodie", SKU: "HW-001", Price: 3990, Image: "images/hoodie.jpg", Size: "M", Color: "Black", Qty: qty}
}

func TestAddItem_MergesSameKey(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.AddItem(hoodie(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(hoodie(3)); err != nil {
		t.Fatal(err)
	}
	items := svc.Store().Load()
	if len(items) != 1 || items[0].Qty != 5 {
		t.Fatalf("want one line qty=5, got %+v", items)
	}
}

func TestAddItem_MergeClampsAt999(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.AddItem(hoodie(990))
	line, err := svc.AddItem(hoodie(20))
	if err != nil {
		t.Fatal(err)
	}
	if line.Qty != cart.MaxQty {
		t.Fatalf("want 999, got %d", line.Qty)
	}
}

func TestAddItem_DifferentVariantsAreSeparateLines(t *testing.T) {
	svc, _ := newService(t)
	a := hoodie(1)
	b := hoodie(1)
	b.Size = "L"
	c := hoodie(1)
	c.Color = ""
	for _, cand := range []cart.Candidate{a, b, c} {
		if _, err := svc.AddItem(cand); err != nil {
			t.Fatal(err)
		}
	}
	items := svc.Store().Load()
	if len(items) != 3 {
		t.Fatalf("want 3 lines, got %d", len(items))
	}
	if items[0].Size != "M" || items[1].Size != "L" || items[2].Color != "" {
		t.Fatalf("insertion order not kept: %+v", items)
	}
}

func TestAddItem_DefaultsAndCoercion(t *testing.T) {
	svc, _ := newService(t)
	cand := cart.Candidate{ID: "core", Name: "Tee", Price: -10}
	line, err := svc.AddItem(cand)
	if err != nil {
		t.Fatal(err)
	}
	if line.Qty != 1 || line.Price != 0 {
		t.Fatalf("want qty=1 price=0, got %+v", line)
	}

	cand = cart.Candidate{ID: "street", Name: "Pants", Price: 2990, Qty: 5000}
	line, _ = svc.AddItem(cand)
	if line.Qty != cart.MaxQty {
		t.Fatalf("want clamp to 999, got %d", line.Qty)
	}
}

func TestAddItem_KeepsFirstSnapshot(t *testing.T) {
	svc, _ := newService(t)
	first := hoodie(1)
	_, _ = svc.AddItem(first)
	second := hoodie(1)
	second.Name = "Renamed"
	second.Price = 1
	_, _ = svc.AddItem(second)

	items := svc.Store().Load()
	if items[0].Name != "Hoodie" || items[0].Price != 3990 || items[0].Qty != 2 {
		t.Fatalf("merge should only bump qty, got %+v", items[0])
	}
}

func TestSetQuantity_ClampsAndIgnoresMissing(t *testing.T) {
	svc, _ := newService(t)
	_, _ = svc.AddItem(hoodie(2))

	cases := []struct {
		in, want int
	}{
		{0, 1}, {-4, 1}, {7, 7}, {1000, 999}, {999, 999},
	}
	for _, tc := range cases {
		if err := svc.SetQuantity(0, tc.in); err != nil {
			t.Fatal(err)
		}
		if got := svc.Store().Load()[0].Qty; got != tc.want {
			t.Fatalf("SetQuantity(%d): want %d, got %d", tc.in, tc.want, got)
		}
	}

	before := svc.Store().Load()
	if err := svc.SetQuantity(3, 10); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, svc.Store().Load()) {
		t.Fatal("out of range SetQuantity changed the cart")
	}
}

func TestRemoveItem_Reindexes(t *testing.T) {
	svc, _ := newService(t)
	for _, id := range []string{"a", "b", "c"} {
		_, _ = svc.AddItem(cart.Candidate{ID: id, Name: id, Price: 10})
	}
	if err := svc.RemoveItem(1); err != nil {
		t.Fatal(err)
	}
	items := svc.Store().Load()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Fatalf("want [a c], got %+v", items)
	}
	if err := svc.RemoveItem(5); err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveItem(-1); err != nil {
		t.Fatal(err)
	}
	if got := svc.Store().Load(); len(got) != 2 || got[1].ID != "c" {
		t.Fatalf("out of range remove changed the cart: %+v", got)
	}
}

func TestClear_WritesEmptyArray(t *testing.T) {
	svc, mem := newService(t)
	_, _ = svc.AddItem(hoodie(1))
	if err := svc.Clear(); err != nil {
		t.Fatal(err)
	}
	raw, ok, _ := mem.Get(cart.DefaultKey)
	if !ok || raw != "[]" {
		t.Fatalf("want slot kept as [], got %q ok=%v", raw, ok)
	}
}

func TestQtyAlwaysInRange(t *testing.T) {
	svc, _ := newService(t)
	ops := []func(){
		func() { _, _ = svc.AddItem(hoodie(500)) },
		func() { _, _ = svc.AddItem(hoodie(600)) },
		func() { _ = svc.SetQuantity(0, -20) },
		func() { _, _ = svc.AddItem(hoodie(-3)) },
		func() { _ = svc.SetQuantity(0, 1e6) },
		func() { _, _ = svc.AddItem(cart.Candidate{ID: "x", Qty: 0}) },
		func() { _ = svc.SetQuantity(1, 0) },
	}
	for i, op := range ops {
		op()
		for _, it := range svc.Store().Load() {
			if it.Qty < cart.MinQty || it.Qty > cart.MaxQty {
				t.Fatalf("after op %d qty out of range: %+v", i, it)
			}
		}
	}
}

func TestSaveFailure_LeavesCartUntouched(t *testing.T) {
	svc, mem := newService(t)
	_, _ = svc.AddItem(hoodie(1))
	mem.Quota = 10

	_, err := svc.AddItem(cart.Candidate{ID: "core", Name: "Tee", Price: 1490})
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Fatalf("want ErrQuotaExceeded, got %v", err)
	}
	if items := svc.Store().Load(); len(items) != 1 {
		t.Fatalf("failed save must not change stored cart, got %+v", items)
	}
}

func TestCount(t *testing.T) {
	c := cart.Cart{{ID: "a", Qty: 2}, {ID: "b", Qty: 3}}
	if got := cart.Count(c); got != 5 {
		t.Fatalf("want 5, got %d", got)
	}
	if got := cart.Count(nil); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}
