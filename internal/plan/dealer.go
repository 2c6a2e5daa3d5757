package plan

// unitPair identifies a directed conversion between two units of one family.
type unitPair struct{ From, To string }

// routeDealer hands out conversion pairs that still need a planned route.
// Pairs come back in the order they were first requested, each at most once.
type routeDealer struct {
	queue []unitPair
	needs map[unitPair]struct{}
	done  map[unitPair]struct{}
}

func (d *routeDealer) NextNeeds() (from, to string, ok bool) {
	for len(d.queue) > 0 {
		pair := d.queue[0]
		d.queue = d.queue[1:]

		if _, exists := d.done[pair]; exists {
			continue
		}

		d.Done(pair.From, pair.To)

		return pair.From, pair.To, true
	}

	return
}

func (d *routeDealer) Needs(from, to string) {
	if d.needs == nil {
		d.needs = make(map[unitPair]struct{})
	}

	pair := unitPair{From: from, To: to}
	if _, exists := d.done[pair]; exists {
		return
	}

	if _, exists := d.needs[pair]; exists {
		return
	}

	d.needs[pair] = struct{}{}
	d.queue = append(d.queue, pair)
}

func (d *routeDealer) Done(from, to string) {
	if d.done == nil {
		d.done = make(map[unitPair]struct{})
	}

	pair := unitPair{From: from, To: to}
	delete(d.needs, pair)
	d.done[pair] = struct{}{}
}
