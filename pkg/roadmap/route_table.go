package roadmap

import (
	"maps"
	"slices"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
)

// routeTable. map route id -> route, id dibatasi [MinRouteID, MaxRouteID] di boundary (checkRouteID).
type routeTable struct {
	routes map[int]*datastructure.Route
}

func newRouteTable() *routeTable {
	return &routeTable{routes: make(map[int]*datastructure.Route)}
}

func (rt *routeTable) get(id int) (*datastructure.Route, bool) {
	r, ok := rt.routes[id]
	return r, ok
}

func (rt *routeTable) put(r *datastructure.Route) {
	rt.routes[r.ID] = r
}

func (rt *routeTable) delete(id int) {
	delete(rt.routes, id)
}

func (rt *routeTable) len() int {
	return len(rt.routes)
}

// ids. route id terurut ascending.
func (rt *routeTable) ids() []int {
	return slices.Sorted(maps.Keys(rt.routes))
}
