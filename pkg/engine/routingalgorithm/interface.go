package routingalgorithm

import "github.com/lintang-b-s/roadnet/pkg/datastructure"

type Graph interface {
	NumCities() int
	Roads(cityID int32) []datastructure.Road
}
