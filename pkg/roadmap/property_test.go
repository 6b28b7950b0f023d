package roadmap

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/lintang-b-s/roadnet/pkg/engine/routingalgorithm"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

// snapshot. dump semua road & route description, buat cek operasi yang gagal tidak mengubah apa apa.
func snapshot(m *RoadMap) string {
	s := ""
	for id := int32(0); int(id) < m.g.NumCities(); id++ {
		s += fmt.Sprintf("%s:%v\n", m.g.CityName(id), m.g.Roads(id))
	}
	for _, id := range m.RouteIDs() {
		desc, _ := m.RouteDescription(id)
		s += desc + "\n"
	}
	return s
}

// checkInvariants. setiap pasangan city berurutan di route adalah road yang ada dengan length & year yang sama,
// dan tidak ada city yang muncul dua kali. setiap road ada di kedua endpoint.
func checkInvariants(t *testing.T, m *RoadMap) {
	t.Helper()
	for from := int32(0); int(from) < m.g.NumCities(); from++ {
		for _, road := range m.g.Roads(from) {
			back, ok := m.g.Road(road.ToCityID, from)
			if !assert.True(t, ok, "road %d-%d has no reverse record", from, road.ToCityID) {
				return
			}
			assert.Equal(t, road.Length, back.Length)
			assert.Equal(t, road.BuiltYear, back.BuiltYear)
		}
	}

	for _, id := range m.RouteIDs() {
		path, err := m.Route(id)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(path), 2)

		seen := make(map[int32]bool)
		for i, n := range path {
			assert.False(t, seen[n.CityID], "route %d visits city %d twice", id, n.CityID)
			seen[n.CityID] = true
			if i+1 == len(path) {
				break
			}
			road, ok := m.g.Road(n.CityID, path[i+1].CityID)
			if !assert.True(t, ok, "route %d uses missing road", id) {
				continue
			}
			assert.Equal(t, road.Length, n.Length)
			assert.Equal(t, road.BuiltYear, n.Year)
		}
	}
}

func randomYear(r *rand.Rand) int32 {
	y := int32(r.Intn(120)) - 60
	if y == 0 {
		y = 1
	}
	return y
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	const (
		numCities = 12
		numOps    = 3000
		maxID     = 8
	)

	for _, seed := range []uint64{1, 42, 2024} {
		t.Run(strconv.FormatUint(seed, 10), func(t *testing.T) {
			r := rand.New(rand.NewSource(seed))
			m := NewRoadMap()
			city := func() string {
				return "c" + strconv.Itoa(r.Intn(numCities))
			}

			for op := 0; op < numOps; op++ {
				before := snapshot(m)

				var err error
				switch r.Intn(7) {
				case 0, 1:
					err = m.AddRoad(city(), city(), uint32(r.Intn(5)+1), randomYear(r))
				case 2:
					a, b := city(), city()
					if road, rerr := m.Road(a, b); rerr == nil {
						err = m.RepairRoad(a, b, road.BuiltYear+int32(r.Intn(5))-1)
					}
				case 3:
					err = m.NewRoute(r.Intn(maxID)+1, city(), city())
				case 4:
					err = m.ExtendRoute(r.Intn(maxID)+1, city())
				case 5:
					err = m.RemoveRoad(city(), city())
				case 6:
					if r.Intn(4) == 0 {
						err = m.RemoveRoute(r.Intn(maxID) + 1)
					}
				}

				if err != nil {
					assert.Equal(t, before, snapshot(m), "failed operation %d changed state: %v", op, err)
				}
				checkInvariants(t, m)
				if t.Failed() {
					return
				}
			}
		})
	}
}

// route baru selalu shortest path: length nya sama dengan dijkstra tanpa exclusion.
func TestRandomNewRouteIsShortest(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := NewRoadMap()
	for i := 0; i < 60; i++ {
		a, b := "c"+strconv.Itoa(r.Intn(20)), "c"+strconv.Itoa(r.Intn(20))
		_ = m.AddRoad(a, b, uint32(r.Intn(20)+1), randomYear(r))
	}

	created := 0
	for id := MinRouteID; id <= 200; id++ {
		a, b := "c"+strconv.Itoa(r.Intn(20)), "c"+strconv.Itoa(r.Intn(20))
		if err := m.NewRoute(id, a, b); err != nil {
			continue
		}
		created++

		path, _ := m.Route(id)
		from, _ := m.g.CityID(a)
		to, _ := m.g.CityID(b)
		want, err := routingalgorithm.NewRouteAlgorithm(m.g).ShortestPath(from, to, routingalgorithm.NoExclusion)
		assert.NoError(t, err)
		assert.Equal(t, want.Length(), path.Length())
		assert.Equal(t, want.OldestYear(), path.OldestYear())
		assert.Equal(t, want, path)
	}
	assert.Greater(t, created, 0)
}
