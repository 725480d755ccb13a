// Package disttable implements C4, the Distance-Table Builder. The M
// rows are independent one-to-one CH queries, so this fans them out
// across a worker pool the way the teacher's matrix handler fans out
// one-to-many solves: a buffered channel of row indices drained by N
// goroutines, each holding its own query instance so CH scratch is
// never shared (matrix.go's HandleMatrixRequest, generalized from a
// single worker to a configurable pool).
package disttable

import (
	"fmt"
	"sync"

	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	"golang.org/x/exp/slog"
)

// Build fills an M x M distance table, one row per transit node, using
// workers independent CH query handles. workers < 1 is treated as 1.
func Build(factory comps.ICHQueryFactory, tn *transitnode.Set, workers int) *structs.DistanceTable {
	m := tn.Count()
	table := structs.NewDistanceTable(m)
	if m == 0 {
		return table
	}
	if workers < 1 {
		workers = 1
	}

	slog.Info(fmt.Sprintf("building transit distance table: %v x %v, %v workers", m, m, workers))

	rows := make(chan int, m)
	for i := 0; i < m; i++ {
		rows <- i
	}
	close(rows)

	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			query := factory.NewQuery()
			for i := range rows {
				fillRow(query, table, tn, i)
			}
		}()
	}
	wg.Wait()

	slog.Info("finished transit distance table")
	return table
}

func fillRow(query comps.ICHQuery, table *structs.DistanceTable, tn *transitnode.Set, i int) {
	src := tn.TN[i]
	row := table.Row(i)
	for j := 0; j < tn.Count(); j++ {
		if i == j {
			continue
		}
		dst := tn.TN[j]
		row[j] = query.Query(src, dst)
	}
}
