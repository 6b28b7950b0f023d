// Package roadmap keeps the national road network and the registry of routes (at most 999, ids 1..999)
// that run through it. Every route is a shortest path that was unique when it was chosen, and stays a
// valid loop-free path while roads are repaired or removed.
//
// RoadMap is not safe for concurrent use. Failed operations leave the map exactly as it was.
package roadmap

import (
	"errors"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/roadnet/pkg/server"
)

type RouteAlgorithm interface {
	ShortestPath(from, to int32, excluded routingalgorithm.Exclusion) (datastructure.Path, error)
}

type RoadMap struct {
	g      *datastructure.Graph
	rt     RouteAlgorithm
	routes *routeTable
}

func NewRoadMap() *RoadMap {
	g := datastructure.NewGraph()
	return &RoadMap{
		g:      g,
		rt:     routingalgorithm.NewRouteAlgorithm(g),
		routes: newRouteTable(),
	}
}

// AddRoad. tambah road dua arah city1<->city2, city yang belum ada dibuat.
func (m *RoadMap) AddRoad(city1, city2 string, length uint32, builtYear int32) error {
	if err := checkCityNames(city1, city2); err != nil {
		return err
	}
	if city1 == city2 {
		return server.WrapErrorf(ErrSelfLoop, server.ErrBadParamInput, "addRoad %s", city1)
	}
	if length == 0 {
		return server.WrapErrorf(ErrInvalidLength, server.ErrBadParamInput, "addRoad %s;%s", city1, city2)
	}
	if builtYear == 0 {
		return server.WrapErrorf(ErrInvalidYear, server.ErrBadParamInput, "addRoad %s;%s", city1, city2)
	}

	if _, err := m.road(city1, city2); err == nil {
		return server.WrapErrorf(ErrDuplicateRoad, server.ErrConflict, "addRoad %s;%s", city1, city2)
	}

	a := m.g.AddCity(city1)
	b := m.g.AddCity(city2)
	m.g.AddRoad(a, b, length, builtYear)
	return nil
}

// RepairRoad. set year road city1<->city2 ke repairYear, year tidak boleh mundur.
func (m *RoadMap) RepairRoad(city1, city2 string, repairYear int32) error {
	if err := checkCityNames(city1, city2); err != nil {
		return err
	}
	if repairYear == 0 {
		return server.WrapErrorf(ErrInvalidYear, server.ErrBadParamInput, "repairRoad %s;%s", city1, city2)
	}

	road, err := m.road(city1, city2)
	if err != nil {
		return err
	}
	if datastructure.NewerYear(road.BuiltYear, repairYear) {
		return server.WrapErrorf(ErrRepairYearTooOld, server.ErrUnprocessable, "repairRoad %s;%s: road year %d, repair year %d",
			city1, city2, road.BuiltYear, repairYear)
	}

	a, _ := m.g.CityID(city1)
	b, _ := m.g.CityID(city2)
	m.repair(a, b, repairYear)
	return nil
}

// repair. update year kedua record road a<->b dan semua route yang lewat road itu.
func (m *RoadMap) repair(a, b int32, year int32) {
	m.g.SetRoadYear(a, b, year)
	for _, id := range m.routes.ids() {
		route, _ := m.routes.get(id)
		route.SetEdgeYear(a, b, year)
	}
}

type routeRepair struct {
	route *datastructure.Route
	nodes datastructure.Path
}

/*
RemoveRoad. hapus road city1<->city2. setiap route yang lewat road itu diperbaiki dengan shortest path pengganti
antara dua ujung road (arah sesuai urutan route), tanpa lewat city lain di route tersebut.
kalau ada satu route saja yang tidak bisa diperbaiki (no path / ambiguous), road dikembalikan ke posisi semula dan
tidak ada route yang berubah.
*/
func (m *RoadMap) RemoveRoad(city1, city2 string) error {
	if err := checkCityNames(city1, city2); err != nil {
		return err
	}
	if _, err := m.road(city1, city2); err != nil {
		return err
	}

	a, _ := m.g.CityID(city1)
	b, _ := m.g.CityID(city2)
	removed, _ := m.g.RemoveRoad(a, b)

	repairs := make([]routeRepair, 0)
	for _, id := range m.routes.ids() {
		route, _ := m.routes.get(id)
		i := route.Nodes.EdgeIndex(a, b)
		if i < 0 {
			continue
		}

		x, y := route.Nodes[i].CityID, route.Nodes[i+1].CityID
		excluded := routingalgorithm.ExcludeRoute(m.g.NumCities(), route.Nodes, x, y)
		segment, err := m.rt.ShortestPath(x, y, excluded)
		if err != nil {
			m.g.RestoreRoad(removed)
			return wrapPathError(err, "removeRoad %s;%s: route %d cannot be repaired", city1, city2, id)
		}

		repairs = append(repairs, routeRepair{route, route.Nodes.ReplaceEdge(i, segment)})
	}

	for _, r := range repairs {
		r.route.Nodes = r.nodes
	}
	return nil
}

// Road. return road city1<->city2 (areConnected).
func (m *RoadMap) Road(city1, city2 string) (datastructure.Road, error) {
	if err := checkCityNames(city1, city2); err != nil {
		return datastructure.Road{}, err
	}
	return m.road(city1, city2)
}

func (m *RoadMap) road(city1, city2 string) (datastructure.Road, error) {
	if city1 == city2 {
		return datastructure.Road{}, server.WrapErrorf(ErrSelfLoop, server.ErrBadParamInput, "road %s;%s", city1, city2)
	}
	a, ok := m.g.CityID(city1)
	if !ok {
		return datastructure.Road{}, server.WrapErrorf(ErrUnknownCity, server.ErrNotFound, "city %s", city1)
	}
	b, ok := m.g.CityID(city2)
	if !ok {
		return datastructure.Road{}, server.WrapErrorf(ErrUnknownCity, server.ErrNotFound, "city %s", city2)
	}
	road, ok := m.g.Road(a, b)
	if !ok {
		return datastructure.Road{}, server.WrapErrorf(ErrRoadNotFound, server.ErrNotFound, "road %s;%s", city1, city2)
	}
	return road, nil
}

// Cities. nama semua city urut sesuai id.
func (m *RoadMap) Cities() []string {
	names := make([]string, m.g.NumCities())
	for i := range names {
		names[i] = m.g.CityName(int32(i))
	}
	return names
}

func wrapPathError(err error, format string, a ...interface{}) error {
	code := server.ErrUnprocessable
	if errors.Is(err, routingalgorithm.ErrAmbiguousPath) {
		code = server.ErrConflict
	}
	return server.WrapErrorf(err, code, format, a...)
}
