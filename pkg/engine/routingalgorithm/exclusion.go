package routingalgorithm

import "github.com/lintang-b-s/roadnet/pkg/datastructure"

// Exclusion. set city yang tidak boleh dilewati satu kali shortest path search.
// dibuat per search & dibuang setelahnya, jadi tidak ada flag visited yang nyangkut di graph.
type Exclusion struct {
	blocked []bool
}

// NoExclusion. semua city boleh dilewati.
var NoExclusion = Exclusion{}

func NewExclusion(numCities int, cities ...int32) Exclusion {
	e := Exclusion{blocked: make([]bool, numCities)}
	for _, c := range cities {
		e.blocked[c] = true
	}
	return e
}

// ExcludeRoute. semua city di route tidak boleh dilewati kecuali anchors.
func ExcludeRoute(numCities int, route datastructure.Path, anchors ...int32) Exclusion {
	e := NewExclusion(numCities, route.Cities()...)
	for _, a := range anchors {
		e.blocked[a] = false
	}
	return e
}

func (e Exclusion) Contains(cityID int32) bool {
	return cityID >= 0 && int(cityID) < len(e.blocked) && e.blocked[cityID]
}
