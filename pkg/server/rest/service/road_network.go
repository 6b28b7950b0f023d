package service

import (
	"context"
	"log"
	"strings"
	"sync"

	"fortio.org/safecast"
	"github.com/lintang-b-s/roadnet/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
)

// Hop. satu city di route, Length & Year adalah road ke city berikutnya (0 di city terakhir).
type Hop struct {
	City   string
	Length uint32
	Year   int32
}

// HopInput. hop dari request, length & year dicek range nya sebelum masuk RoadMap.
type HopInput struct {
	City   string
	Length int64
	Year   int64
}

type RouteView struct {
	ID          int
	Description string
	Length      uint64
	Hops        []Hop
}

type RoadView struct {
	From      string
	To        string
	Length    uint32
	BuiltYear int32
}

// RoadNetworkService. RoadMap tidak thread safe, semua call di serialize pakai mutex.
type RoadNetworkService struct {
	mu         sync.Mutex
	m          RoadMap
	operations *prometheus.CounterVec
}

func NewRoadNetworkService(m RoadMap, reg prometheus.Registerer) *RoadNetworkService {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roadnet",
		Name:      "operations_total",
		Help:      "Road network operations by operation and result.",
	}, []string{"operation", "result"})
	reg.MustRegister(operations)

	return &RoadNetworkService{m: m, operations: operations}
}

func (s *RoadNetworkService) observe(operation string, err error) error {
	result := "ok"
	if err != nil {
		result = strings.ReplaceAll(server.CodeOf(err).String(), " ", "_")
		if server.CodeOf(err) == server.ErrInternalServerError || server.CodeOf(err) == server.ErrUnknown {
			log.Printf("%s: %v", operation, err)
		}
	}
	s.operations.WithLabelValues(operation, result).Inc()
	return err
}

func toLength(length int64) (uint32, error) {
	l, err := safecast.Conv[uint32](length)
	if err != nil {
		return 0, server.WrapErrorf(err, server.ErrBadParamInput, "length %d out of range", length)
	}
	return l, nil
}

func toYear(year int64) (int32, error) {
	y, err := safecast.Conv[int32](year)
	if err != nil {
		return 0, server.WrapErrorf(err, server.ErrBadParamInput, "year %d out of range", year)
	}
	return y, nil
}

func (s *RoadNetworkService) AddRoad(ctx context.Context, city1, city2 string, length, builtYear int64) error {
	l, err := toLength(length)
	if err != nil {
		return s.observe("add_road", err)
	}
	y, err := toYear(builtYear)
	if err != nil {
		return s.observe("add_road", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observe("add_road", s.m.AddRoad(city1, city2, l, y))
}

func (s *RoadNetworkService) RepairRoad(ctx context.Context, city1, city2 string, repairYear int64) error {
	y, err := toYear(repairYear)
	if err != nil {
		return s.observe("repair_road", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observe("repair_road", s.m.RepairRoad(city1, city2, y))
}

func (s *RoadNetworkService) RemoveRoad(ctx context.Context, city1, city2 string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observe("remove_road", s.m.RemoveRoad(city1, city2))
}

func (s *RoadNetworkService) Road(ctx context.Context, city1, city2 string) (RoadView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	road, err := s.m.Road(city1, city2)
	if err != nil {
		return RoadView{}, s.observe("get_road", err)
	}
	s.observe("get_road", nil)
	return RoadView{From: city1, To: city2, Length: road.Length, BuiltYear: road.BuiltYear}, nil
}

func (s *RoadNetworkService) Cities(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Cities()
}

func (s *RoadNetworkService) NewRoute(ctx context.Context, id int, city1, city2 string) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.NewRoute(id, city1, city2); err != nil {
		return RouteView{}, s.observe("new_route", err)
	}
	return s.routeView(id, "new_route")
}

func (s *RoadNetworkService) ExtendRoute(ctx context.Context, id int, city string) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.ExtendRoute(id, city); err != nil {
		return RouteView{}, s.observe("extend_route", err)
	}
	return s.routeView(id, "extend_route")
}

// DefineRoute. Length & Year hop terakhir diabaikan.
func (s *RoadNetworkService) DefineRoute(ctx context.Context, id int, hops []HopInput) (RouteView, error) {
	if len(hops) == 0 {
		return RouteView{}, s.observe("define_route", server.NewErrorf(server.ErrBadParamInput, "route %d has no cities", id))
	}
	cities := make([]string, len(hops))
	lengths := make([]uint32, 0, len(hops)-1)
	years := make([]int32, 0, len(hops)-1)
	for i, h := range hops {
		cities[i] = h.City
		if i+1 == len(hops) {
			break
		}
		l, err := toLength(h.Length)
		if err != nil {
			return RouteView{}, s.observe("define_route", err)
		}
		y, err := toYear(h.Year)
		if err != nil {
			return RouteView{}, s.observe("define_route", err)
		}
		lengths = append(lengths, l)
		years = append(years, y)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.DefineRoute(id, cities, lengths, years); err != nil {
		return RouteView{}, s.observe("define_route", err)
	}
	return s.routeView(id, "define_route")
}

func (s *RoadNetworkService) RemoveRoute(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.observe("remove_route", s.m.RemoveRoute(id))
}

func (s *RoadNetworkService) Route(ctx context.Context, id int) (RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.routeView(id, "get_route")
}

// Routes. semua route terurut id.
func (s *RoadNetworkService) Routes(ctx context.Context) ([]RouteView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.m.RouteIDs()
	routes := make([]RouteView, 0, len(ids))
	for _, id := range ids {
		r, err := s.routeView(id, "get_route")
		if err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

// routeView. dipanggil dengan mu sudah di lock.
func (s *RoadNetworkService) routeView(id int, operation string) (RouteView, error) {
	path, err := s.m.Route(id)
	if err != nil {
		return RouteView{}, s.observe(operation, err)
	}
	desc, err := s.m.RouteDescription(id)
	if err != nil {
		return RouteView{}, s.observe(operation, server.WrapErrorf(err, server.ErrInternalServerError, "route %d", id))
	}

	hops := make([]Hop, len(path))
	for i, n := range path {
		hops[i] = Hop{City: s.m.CityName(n.CityID), Length: n.Length, Year: n.Year}
	}
	s.observe(operation, nil)
	return RouteView{ID: id, Description: desc, Length: path.Length(), Hops: hops}, nil
}
