package roadmap

import (
	"strings"

	"github.com/lintang-b-s/roadnet/pkg/server"
)

const (
	MinRouteID = 1
	MaxRouteID = 999

	// Separator. pemisah field di protocol & route description, tidak boleh ada di nama city.
	Separator = ';'
)

// ValidCityName. nama city tidak kosong, tanpa karakter ASCII 0-31 dan tanpa Separator.
func ValidCityName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= 31 || name[i] == Separator {
			return false
		}
	}
	return true
}

func ValidRouteID(id int) bool {
	return id >= MinRouteID && id <= MaxRouteID
}

func checkCityNames(names ...string) error {
	for _, name := range names {
		if !ValidCityName(name) {
			return server.WrapErrorf(ErrInvalidName, server.ErrBadParamInput, "city name %q", strings.ToValidUTF8(name, "?"))
		}
	}
	return nil
}

func checkRouteID(id int) error {
	if !ValidRouteID(id) {
		return server.WrapErrorf(ErrRouteIDOutOfRange, server.ErrBadParamInput, "route id %d not in [%d,%d]", id, MinRouteID, MaxRouteID)
	}
	return nil
}
