package roadmap

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/lintang-b-s/roadnet/pkg/datastructure"
	"github.com/lintang-b-s/roadnet/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/roadnet/pkg/server"
)

// NewRoute. buat route id dari city1 ke city2 lewat shortest path yang unique.
func (m *RoadMap) NewRoute(id int, city1, city2 string) error {
	if err := checkRouteID(id); err != nil {
		return err
	}
	if err := checkCityNames(city1, city2); err != nil {
		return err
	}
	if _, ok := m.routes.get(id); ok {
		return server.WrapErrorf(ErrRouteIDUsed, server.ErrConflict, "newRoute %d", id)
	}
	if city1 == city2 {
		return server.WrapErrorf(ErrSameCity, server.ErrBadParamInput, "newRoute %d: %s", id, city1)
	}

	a, err := m.cityID(city1)
	if err != nil {
		return err
	}
	b, err := m.cityID(city2)
	if err != nil {
		return err
	}

	path, err := m.rt.ShortestPath(a, b, routingalgorithm.NoExclusion)
	if err != nil {
		return wrapPathError(err, "newRoute %d %s;%s", id, city1, city2)
	}

	m.routes.put(datastructure.NewRoute(id, path))
	return nil
}

// extension. kandidat perpanjangan route, dari tail ke city baru (atTail) atau dari city baru ke head.
type extension struct {
	path      datastructure.Path
	atTail    bool
	ambiguous bool
}

func (e extension) length() uint64 {
	return e.path.Length()
}

func (e extension) oldestYear() int32 {
	return e.path.OldestYear()
}

// betterExtension. -1 kalau a lebih baik, 1 kalau b lebih baik, 0 kalau sama persis.
func betterExtension(a, b extension) int {
	switch {
	case a.length() < b.length():
		return -1
	case a.length() > b.length():
		return 1
	case datastructure.NewerYear(a.oldestYear(), b.oldestYear()):
		return -1
	case datastructure.NewerYear(b.oldestYear(), a.oldestYear()):
		return 1
	}
	return 0
}

func (m *RoadMap) extensionFrom(from, to int32, route datastructure.Path, anchor int32, atTail bool) (extension, bool, error) {
	excluded := routingalgorithm.ExcludeRoute(m.g.NumCities(), route, anchor)
	path, err := m.rt.ShortestPath(from, to, excluded)
	switch {
	case err == nil:
		return extension{path: path, atTail: atTail}, true, nil
	case errors.Is(err, routingalgorithm.ErrAmbiguousPath):
		return extension{path: path, atTail: atTail, ambiguous: true}, true, nil
	case errors.Is(err, routingalgorithm.ErrNoPath):
		return extension{}, false, nil
	}
	return extension{}, false, err
}

/*
ExtendRoute. perpanjang route id sampai city. ada dua kandidat: tail route -> city, dan city -> head route.
city yang sudah ada di route tidak boleh dilewati kecuali ujung yang diperpanjang.
kandidat dibandingkan length dulu lalu oldest year (yang lebih baru menang). gagal kalau dua kandidat tidak ada,
kalau dua kandidat sama persis, atau kalau kandidat yang menang sendiri tidak unique.
*/
func (m *RoadMap) ExtendRoute(id int, city string) error {
	if err := checkRouteID(id); err != nil {
		return err
	}
	if err := checkCityNames(city); err != nil {
		return err
	}
	route, ok := m.routes.get(id)
	if !ok {
		return server.WrapErrorf(ErrRouteNotFound, server.ErrNotFound, "extendRoute %d", id)
	}
	target, err := m.cityID(city)
	if err != nil {
		return err
	}
	if route.Nodes.Contains(target) {
		return server.WrapErrorf(ErrCityOnRoute, server.ErrConflict, "extendRoute %d: %s", id, city)
	}

	head, tail := route.Nodes.Head(), route.Nodes.Tail()
	fromTail, okTail, err := m.extensionFrom(tail, target, route.Nodes, tail, true)
	if err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, "extendRoute %d", id)
	}
	toHead, okHead, err := m.extensionFrom(target, head, route.Nodes, head, false)
	if err != nil {
		return server.WrapErrorf(err, server.ErrInternalServerError, "extendRoute %d", id)
	}

	var best extension
	switch {
	case !okTail && !okHead:
		return wrapPathError(routingalgorithm.ErrNoPath, "extendRoute %d: %s", id, city)
	case !okHead:
		best = fromTail
	case !okTail:
		best = toHead
	default:
		switch betterExtension(fromTail, toHead) {
		case -1:
			best = fromTail
		case 1:
			best = toHead
		default:
			return wrapPathError(routingalgorithm.ErrAmbiguousPath, "extendRoute %d: %s reachable from both ends", id, city)
		}
	}
	if best.ambiguous {
		return wrapPathError(routingalgorithm.ErrAmbiguousPath, "extendRoute %d: %s", id, city)
	}

	if best.atTail {
		route.Nodes = route.Nodes.Append(best.path)
	} else {
		route.Nodes = route.Nodes.Prepend(best.path)
	}
	return nil
}

func (m *RoadMap) RemoveRoute(id int) error {
	if err := checkRouteID(id); err != nil {
		return err
	}
	if _, ok := m.routes.get(id); !ok {
		return server.WrapErrorf(ErrRouteNotFound, server.ErrNotFound, "removeRoute %d", id)
	}
	m.routes.delete(id)
	return nil
}

/*
DefineRoute. daftarkan route id dengan urutan city, length & year per road yang diberikan langsung.
road yang belum ada dibuat. road yang sudah ada harus punya length yang sama, dan year nya diperbaiki
ke year yang diberikan (year tidak boleh mundur), perbaikan ikut diterapkan ke route lain.
semua hop dicek dulu sebelum ada yang diubah.
*/
func (m *RoadMap) DefineRoute(id int, cities []string, lengths []uint32, years []int32) error {
	if err := checkRouteID(id); err != nil {
		return err
	}
	if _, ok := m.routes.get(id); ok {
		return server.WrapErrorf(ErrRouteIDUsed, server.ErrConflict, "defineRoute %d", id)
	}
	if len(cities) < 2 || len(lengths) != len(cities)-1 || len(years) != len(cities)-1 {
		return server.WrapErrorf(ErrMalformedRoute, server.ErrBadParamInput, "defineRoute %d: %d cities, %d lengths, %d years",
			id, len(cities), len(lengths), len(years))
	}
	if err := checkCityNames(cities...); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		if _, ok := seen[c]; ok {
			return server.WrapErrorf(ErrRepeatedCity, server.ErrBadParamInput, "defineRoute %d: %s", id, c)
		}
		seen[c] = struct{}{}
	}

	for i := range lengths {
		if lengths[i] == 0 {
			return server.WrapErrorf(ErrInvalidLength, server.ErrBadParamInput, "defineRoute %d: %s;%s", id, cities[i], cities[i+1])
		}
		if years[i] == 0 {
			return server.WrapErrorf(ErrInvalidYear, server.ErrBadParamInput, "defineRoute %d: %s;%s", id, cities[i], cities[i+1])
		}

		road, err := m.road(cities[i], cities[i+1])
		if err != nil {
			// road belum ada, nanti dibuat
			continue
		}
		if road.Length != lengths[i] {
			return server.WrapErrorf(ErrLengthMismatch, server.ErrUnprocessable, "defineRoute %d: %s;%s has length %d, got %d",
				id, cities[i], cities[i+1], road.Length, lengths[i])
		}
		if datastructure.NewerYear(road.BuiltYear, years[i]) {
			return server.WrapErrorf(ErrRepairYearTooOld, server.ErrUnprocessable, "defineRoute %d: %s;%s built %d, got %d",
				id, cities[i], cities[i+1], road.BuiltYear, years[i])
		}
	}

	nodes := make(datastructure.Path, len(cities))
	for i, c := range cities {
		nodes[i].CityID = m.g.AddCity(c)
	}
	for i := 0; i+1 < len(nodes); i++ {
		a, b := nodes[i].CityID, nodes[i+1].CityID
		if !m.g.AddRoad(a, b, lengths[i], years[i]) {
			m.repair(a, b, years[i])
		}
		nodes[i].Length = lengths[i]
		nodes[i].Year = years[i]
	}

	m.routes.put(datastructure.NewRoute(id, nodes))
	return nil
}

// RouteDescription. format id;city;length;year;city;...;city. string kosong kalau id belum dipakai.
func (m *RoadMap) RouteDescription(id int) (string, error) {
	if err := checkRouteID(id); err != nil {
		return "", err
	}
	route, ok := m.routes.get(id)
	if !ok {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(id))
	for i, n := range route.Nodes {
		sb.WriteByte(Separator)
		sb.WriteString(m.g.CityName(n.CityID))
		if i+1 == len(route.Nodes) {
			break
		}
		sb.WriteByte(Separator)
		sb.WriteString(strconv.FormatUint(uint64(n.Length), 10))
		sb.WriteByte(Separator)
		sb.WriteString(strconv.FormatInt(int64(n.Year), 10))
	}
	return sb.String(), nil
}

// Route. copy node route id.
func (m *RoadMap) Route(id int) (datastructure.Path, error) {
	if err := checkRouteID(id); err != nil {
		return nil, err
	}
	route, ok := m.routes.get(id)
	if !ok {
		return nil, server.WrapErrorf(ErrRouteNotFound, server.ErrNotFound, "route %d", id)
	}
	return slices.Clone(route.Nodes), nil
}

func (m *RoadMap) RouteIDs() []int {
	return m.routes.ids()
}

// CityName. nama city dengan id, dipakai buat render Path.
func (m *RoadMap) CityName(cityID int32) string {
	return m.g.CityName(cityID)
}

func (m *RoadMap) cityID(name string) (int32, error) {
	id, ok := m.g.CityID(name)
	if !ok {
		return -1, server.WrapErrorf(ErrUnknownCity, server.ErrNotFound, "city %s", name)
	}
	return id, nil
}

func (m *RoadMap) NumRoutes() int {
	return m.routes.len()
}
