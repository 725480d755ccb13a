// Package dominance implements C5, the Dominance Pruner: for each
// vertex's access set, drop an access node whenever another surviving
// access node on the same side reaches it no worse via the transit
// distance table (spec §4.5).
package dominance

import (
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
)

// PruneList removes dominated entries from one level-sorted access
// list, preserving the relative order of survivors. Ties (equal
// dominance) favor the smaller index, which falls out naturally from
// scanning i ascending before j: i only ever clears a still-kept j, so
// a lower index is never cleared by a higher one it has not yet beaten.
func PruneList(list structs.AccessList, d *structs.DistanceTable, tn *transitnode.Set) structs.AccessList {
	k := len(list)
	if k <= 1 {
		return list
	}

	keep := make([]bool, k)
	pos := make([]int32, k)
	for i, an := range list {
		keep[i] = true
		pos[i], _ = tn.IndexOf(an.Transit)
	}

	for i := 0; i < k; i++ {
		if !keep[i] {
			continue
		}
		for j := 0; j < k; j++ {
			if i == j || !keep[j] {
				continue
			}
			m := d.Get(int(pos[i]), int(pos[j]))
			if m >= structs.Infty {
				continue
			}
			if structs.AddSaturating(list[i].Dist, m) <= list[j].Dist {
				keep[j] = false
			}
		}
	}

	out := make(structs.AccessList, 0, k)
	for i, ok := range keep {
		if ok {
			out = append(out, list[i])
		}
	}
	return out
}

// PruneAll applies PruneList independently to every vertex's forward
// and backward access set.
func PruneAll(forward, backward []structs.AccessList, d *structs.DistanceTable, tn *transitnode.Set) {
	for i := range forward {
		forward[i] = PruneList(forward[i], d, tn)
	}
	for i := range backward {
		backward[i] = PruneList(backward[i], d, tn)
	}
}
