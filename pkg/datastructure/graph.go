package datastructure

// Road. satu record adjacency dari sebuah city. setiap road fisik disimpan sebagai 2 Road (satu di tiap endpoint),
// semua mutasi harus lewat method Graph supaya kedua record selalu sama.
type Road struct {
	ToCityID  int32
	Length    uint32
	BuiltYear int32
}

type City struct {
	ID    int32
	Name  string
	Roads []Road
}

// Graph. road network undirected. cities disimpan di arena (slice) dengan index = city id,
// Road nunjuk neighbor nya pakai id bukan pointer.
type Graph struct {
	cities []City
	index  *NameIndex
}

func NewGraph() *Graph {
	return &Graph{
		cities: make([]City, 0),
		index:  NewNameIndex(defaultIndexBuckets),
	}
}

func (g *Graph) NumCities() int {
	return len(g.cities)
}

func (g *Graph) CityID(name string) (int32, bool) {
	return g.index.Get(name)
}

func (g *Graph) CityName(id int32) string {
	return g.cities[id].Name
}

// Roads. adjacency list city id, jangan dimodifikasi caller.
func (g *Graph) Roads(id int32) []Road {
	return g.cities[id].Roads
}

// AddCity. return id city dengan nama name, buat city baru kalau belum ada.
func (g *Graph) AddCity(name string) int32 {
	if id, ok := g.index.Get(name); ok {
		return id
	}

	id := int32(len(g.cities))
	g.cities = append(g.cities, City{
		ID:    id,
		Name:  name,
		Roads: make([]Road, 0),
	})
	g.index.Set(name, id)
	return id
}

func (g *Graph) roadPos(from, to int32) int {
	for i, r := range g.cities[from].Roads {
		if r.ToCityID == to {
			return i
		}
	}
	return -1
}

// Road. return road dari city from ke city to (areConnected).
func (g *Graph) Road(from, to int32) (Road, bool) {
	i := g.roadPos(from, to)
	if i < 0 {
		return Road{}, false
	}
	return g.cities[from].Roads[i], true
}

// AddRoad. tambah road a<->b di akhir adjacency list kedua city. return false kalau a == b atau road sudah ada.
func (g *Graph) AddRoad(a, b int32, length uint32, builtYear int32) bool {
	if a == b || g.roadPos(a, b) >= 0 {
		return false
	}

	g.cities[a].Roads = append(g.cities[a].Roads, Road{ToCityID: b, Length: length, BuiltYear: builtYear})
	g.cities[b].Roads = append(g.cities[b].Roads, Road{ToCityID: a, Length: length, BuiltYear: builtYear})
	return true
}

// SetRoadYear. update BuiltYear kedua record road a<->b.
func (g *Graph) SetRoadYear(a, b int32, builtYear int32) bool {
	i, j := g.roadPos(a, b), g.roadPos(b, a)
	if i < 0 || j < 0 {
		return false
	}

	g.cities[a].Roads[i].BuiltYear = builtYear
	g.cities[b].Roads[j].BuiltYear = builtYear
	return true
}

// RemovedRoad. road yang sudah dihapus beserta posisi nya di adjacency list, buat rollback.
type RemovedRoad struct {
	A, B      int32
	Length    uint32
	BuiltYear int32
	posA      int
	posB      int
}

// RemoveRoad. hapus kedua record road a<->b.
func (g *Graph) RemoveRoad(a, b int32) (RemovedRoad, bool) {
	i, j := g.roadPos(a, b), g.roadPos(b, a)
	if i < 0 || j < 0 {
		return RemovedRoad{}, false
	}

	road := g.cities[a].Roads[i]
	g.cities[a].Roads = append(g.cities[a].Roads[:i], g.cities[a].Roads[i+1:]...)
	g.cities[b].Roads = append(g.cities[b].Roads[:j], g.cities[b].Roads[j+1:]...)

	return RemovedRoad{
		A:         a,
		B:         b,
		Length:    road.Length,
		BuiltYear: road.BuiltYear,
		posA:      i,
		posB:      j,
	}, true
}

// RestoreRoad. kembalikan road hasil RemoveRoad ke posisi semula di adjacency list kedua city.
func (g *Graph) RestoreRoad(r RemovedRoad) {
	g.cities[r.A].Roads = insertRoad(g.cities[r.A].Roads, r.posA, Road{ToCityID: r.B, Length: r.Length, BuiltYear: r.BuiltYear})
	g.cities[r.B].Roads = insertRoad(g.cities[r.B].Roads, r.posB, Road{ToCityID: r.A, Length: r.Length, BuiltYear: r.BuiltYear})
}

func insertRoad(roads []Road, pos int, road Road) []Road {
	if pos > len(roads) {
		pos = len(roads)
	}
	roads = append(roads, Road{})
	copy(roads[pos+1:], roads[pos:])
	roads[pos] = road
	return roads
}
