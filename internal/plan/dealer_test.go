package plan

import "testing"

func TestRouteDealer(t *testing.T) {
	var d routeDealer

	d.Needs("meter", "kilometer")

	from, to, ok := d.NextNeeds()
	if !ok || from != "meter" || to != "kilometer" {
		t.Fatalf("expected meter->kilometer, got %s->%s (%v)", from, to, ok)
	}

	if _, _, ok = d.NextNeeds(); ok {
		t.Fatal("expected empty dealer")
	}

	// A handed-out pair never comes back.
	d.Needs("meter", "kilometer")

	if _, _, ok = d.NextNeeds(); ok {
		t.Fatal("expected no duplicates")
	}

	// Queued pairs keep request order, repeats collapse.
	d.Needs("meter", "mile")
	d.Needs("mile", "meter")
	d.Needs("meter", "mile")

	from, to, _ = d.NextNeeds()
	if from != "meter" || to != "mile" {
		t.Fatalf("expected meter->mile first, got %s->%s", from, to)
	}

	from, to, _ = d.NextNeeds()
	if from != "mile" || to != "meter" {
		t.Fatalf("expected mile->meter second, got %s->%s", from, to)
	}

	if _, _, ok = d.NextNeeds(); ok {
		t.Fatal("expected no more pairs")
	}
}
