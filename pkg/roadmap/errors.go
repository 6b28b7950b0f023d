package roadmap

import "errors"

var (
	ErrInvalidName       = errors.New("roadmap: invalid city name")
	ErrSelfLoop          = errors.New("roadmap: road endpoints are the same city")
	ErrSameCity          = errors.New("roadmap: route endpoints are the same city")
	ErrInvalidLength     = errors.New("roadmap: road length must be positive")
	ErrInvalidYear       = errors.New("roadmap: year must not be zero")
	ErrDuplicateRoad     = errors.New("roadmap: road already exists")
	ErrUnknownCity       = errors.New("roadmap: city does not exist")
	ErrRoadNotFound      = errors.New("roadmap: road does not exist")
	ErrRepairYearTooOld  = errors.New("roadmap: repair year is older than the road")
	ErrRouteIDOutOfRange = errors.New("roadmap: route id out of range")
	ErrRouteIDUsed       = errors.New("roadmap: route id already used")
	ErrRouteNotFound     = errors.New("roadmap: route does not exist")
	ErrCityOnRoute       = errors.New("roadmap: city already on route")
	ErrRepeatedCity      = errors.New("roadmap: route visits a city twice")
	ErrLengthMismatch    = errors.New("roadmap: road length differs from the existing road")
	ErrMalformedRoute    = errors.New("roadmap: route definition needs at least two cities and one road per hop")
)
