package routingalgorithm

import (
	"errors"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/util"
)

var (
	ErrNoPath        = errors.New("routingalgorithm: no path between cities")
	ErrAmbiguousPath = errors.New("routingalgorithm: shortest path is not unique")
)

type RouteAlgorithm struct {
	g Graph
}

func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

type cameFromPair struct {
	Road   datastructure.Road
	NodeID int32
}

/*
ShortestPath. dijkstra dengan objective leksikografis (total length, oldest year di path):
path yang lebih pendek menang, kalau length sama path yang oldest year nya lebih baru menang.
oldest year = BuiltYear paling tua di antara road road yang dilewati path.

city di excluded tidak pernah di relax (dipakai buat melarang route lewat city yang sudah ada di route itu sendiri).

return ErrNoPath kalau to tidak bisa dicapai. return ErrAmbiguousPath kalau ada path lain yang sama optimal nya,
di kasus ini path yang dikembalikan tetap salah satu path optimal (caller butuh length & year nya buat membandingkan kandidat).

O((V+E)logV) binary heap.
*/
func (rt *RouteAlgorithm) ShortestPath(from, to int32, excluded Exclusion) (datastructure.Path, error) {
	if from == to {
		return datastructure.Path{{CityID: from}}, nil
	}

	n := rt.g.NumCities()
	dist := make([]uint64, n)
	year := make([]int32, n)
	cameFrom := make([]cameFromPair, n)
	for i := 0; i < n; i++ {
		dist[i] = datastructure.Infinity
		year[i] = datastructure.UnreachedYear
		cameFrom[i] = cameFromPair{datastructure.Road{}, -1}
	}

	pq := datastructure.NewMinHeap(n)

	dist[from] = 0
	year[from] = datastructure.NoEdgeYear
	pq.DecreaseKey(from, 0, datastructure.NoEdgeYear)

	for pq.Size() != 0 {
		node, _ := pq.ExtractMin()
		u := node.ID
		if dist[u] == datastructure.Infinity || u == to {
			// sisa node di pq tidak reachable, atau semua node yang lebih dekat dari to sudah settled.
			break
		}

		for _, road := range rt.g.Roads(u) {
			v := road.ToCityID
			if excluded.Contains(v) || !pq.Contains(v) {
				continue
			}

			newDist := dist[u] + uint64(road.Length)
			newYear := datastructure.OldestYear(year[u], road.BuiltYear)

			// relax edge
			if newDist < dist[v] || (newDist == dist[v] && datastructure.NewerYear(newYear, year[v])) {
				dist[v] = newDist
				year[v] = newYear
				cameFrom[v] = cameFromPair{road, u}
				pq.DecreaseKey(v, newDist, newYear)
			}
		}
	}

	if dist[to] == datastructure.Infinity {
		return nil, ErrNoPath
	}

	path := rt.buildPath(to, cameFrom)
	if !rt.isUnique(path, dist, year, excluded) {
		return path, ErrAmbiguousPath
	}
	return path, nil
}

// buildPath. backtrack parent pointer dari to sampai source.
func (rt *RouteAlgorithm) buildPath(to int32, cameFrom []cameFromPair) datastructure.Path {
	path := datastructure.Path{{CityID: to}}
	for v := to; cameFrom[v].NodeID != -1; v = cameFrom[v].NodeID {
		road := cameFrom[v].Road
		path = append(path, datastructure.RouteNode{
			CityID: cameFrom[v].NodeID,
			Length: road.Length,
			Year:   road.BuiltYear,
		})
	}
	return util.ReverseG(path)
}

/*
isUnique. untuk setiap edge u->v di path, cek semua neighbor w != u dari v:
kalau dist[w] + len(w,v) == dist[v] berarti ada path lain ke v dengan length sama. path alternatif itu (prefix ke w, road w-v,
lalu sisa path setelah v) punya oldest year = min(year[w], year road w-v, oldest year suffix path setelah v).
kalau year itu tidak lebih tua dari oldest year path hasil, path nya tidak unique.

dist & year semua w yang memenuhi persamaan sudah final, karena dist[w] < dist[v] <= dist[to] sehingga w sudah di extract sebelum to.
*/
func (rt *RouteAlgorithm) isUnique(path datastructure.Path, dist []uint64, year []int32, excluded Exclusion) bool {
	suffix := make([]int32, len(path))
	suffix[len(path)-1] = datastructure.NoEdgeYear
	for i := len(path) - 2; i >= 0; i-- {
		suffix[i] = datastructure.OldestYear(path[i].Year, suffix[i+1])
	}
	best := suffix[0]

	for i := 1; i < len(path); i++ {
		u := path[i-1].CityID
		v := path[i].CityID
		for _, road := range rt.g.Roads(v) {
			w := road.ToCityID
			if w == u || excluded.Contains(w) || dist[w] == datastructure.Infinity {
				continue
			}
			if dist[w]+uint64(road.Length) != dist[v] {
				continue
			}

			altYear := datastructure.OldestYear(datastructure.OldestYear(year[w], road.BuiltYear), suffix[i])
			if !datastructure.NewerYear(best, altYear) {
				return false
			}
		}
	}
	return true
}
