package plotspec

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tverdal/edaplot/dataset"
)

// Collection is an ordered, immutable mapping from explanatory column name
// to its PlotSpec, as produced by BuildAll. The two supported consumption
// patterns are point lookup (Get) and ordered enumeration (Names / Specs).
type Collection struct {
	names []string
	specs map[string]*PlotSpec
}

// Len returns the number of specs in the collection.
func (c *Collection) Len() int { return len(c.names) }

// Names returns the column names in the dataset's native order. Fresh copy.
func (c *Collection) Names() []string {
	return append([]string(nil), c.names...)
}

// Get returns the spec for one column and whether it exists.
func (c *Collection) Get(name string) (*PlotSpec, bool) {
	s, ok := c.specs[name]

	return s, ok
}

// Specs returns all specs in the dataset's native column order.
func (c *Collection) Specs() []*PlotSpec {
	out := make([]*PlotSpec, len(c.names))
	for i, name := range c.names {
		out[i] = c.specs[name]
	}

	return out
}

// BuildAll invokes Build for every column of ds except the response, in the
// dataset's native column order, and collects the results.
//
// Columns are built concurrently on an errgroup bounded by GOMAXPROCS — the
// builds share no mutable state, and each column's jitter is seeded
// independently, so the collection is identical to a sequential run. Output
// order is the column order regardless of goroutine scheduling.
//
// The first failing column aborts the whole batch: no partial Collection is
// ever returned.
//
// Complexity: O(rows·columns·log rows) total work across workers.
func BuildAll(ds *dataset.Dataset, opts Options) (*Collection, error) {
	var targets []string
	for _, name := range ds.Names() {
		if name == ds.Response() {
			continue
		}
		targets = append(targets, name)
	}

	specs := make([]*PlotSpec, len(targets))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range targets {
		g.Go(func() error {
			spec, err := Build(ds, name, opts)
			if err != nil {
				return err
			}
			specs[i] = spec

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	coll := &Collection{
		names: targets,
		specs: make(map[string]*PlotSpec, len(targets)),
	}
	for i, name := range targets {
		coll.specs[name] = specs[i]
	}

	return coll, nil
}
