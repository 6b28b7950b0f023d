package service

import "github.com/lintang-b-s/roadnet/pkg/datastructure"

type RoadMap interface {
	AddRoad(city1, city2 string, length uint32, builtYear int32) error
	RepairRoad(city1, city2 string, repairYear int32) error
	RemoveRoad(city1, city2 string) error
	Road(city1, city2 string) (datastructure.Road, error)
	Cities() []string

	NewRoute(id int, city1, city2 string) error
	ExtendRoute(id int, city string) error
	DefineRoute(id int, cities []string, lengths []uint32, years []int32) error
	RemoveRoute(id int) error
	RouteDescription(id int) (string, error)
	Route(id int) (datastructure.Path, error)
	RouteIDs() []int
	CityName(cityID int32) string
}
