// Package commands runs the line oriented text protocol on top of a roadmap.RoadMap.
//
// One command per line, fields separated by ';':
//
//	addRoad;city1;city2;length;builtYear
//	repairRoad;city1;city2;repairYear
//	getRouteDescription;routeId
//	newRoute;routeId;city1;city2
//	extendRoute;routeId;city
//	removeRoad;city1;city2
//	removeRoute;routeId
//	routeId;city1;length;year;city2;length;year;...;cityN
//
// Empty lines and lines starting with '#' are skipped. A line that cannot be parsed or executed
// prints "ERROR <line number>" to the error stream and leaves the map unchanged.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server"
)

var (
	ErrUnknownCommand = errors.New("commands: unknown command")
	ErrFieldCount     = errors.New("commands: wrong number of fields")
	ErrNumber         = errors.New("commands: invalid number")
	ErrUnterminated   = errors.New("commands: line is not terminated by a newline")
)

type RoadMap interface {
	AddRoad(city1, city2 string, length uint32, builtYear int32) error
	RepairRoad(city1, city2 string, repairYear int32) error
	RemoveRoad(city1, city2 string) error
	NewRoute(id int, city1, city2 string) error
	ExtendRoute(id int, city string) error
	RemoveRoute(id int) error
	DefineRoute(id int, cities []string, lengths []uint32, years []int32) error
	RouteDescription(id int) (string, error)
}

type Interpreter struct {
	m        RoadMap
	out      io.Writer
	errOut   io.Writer
	errColor *color.Color
	line     int
	failed   int
}

// NewInterpreter. useColor mewarnai "ERROR" (dipakai kalau errOut adalah terminal).
func NewInterpreter(m RoadMap, out, errOut io.Writer, useColor bool) *Interpreter {
	c := color.New(color.FgRed, color.Bold)
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &Interpreter{m: m, out: out, errOut: errOut, errColor: c}
}

// Line. nomor baris terakhir yang dibaca.
func (in *Interpreter) Line() int {
	return in.line
}

// Failed. jumlah baris yang menghasilkan ERROR.
func (in *Interpreter) Failed() int {
	return in.failed
}

// Run. baca & eksekusi semua baris dari r sampai EOF. error hanya dikembalikan kalau r atau output gagal.
func (in *Interpreter) Run(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("commands: read line %d: %w", in.line+1, err)
		}
		if text == "" {
			return nil
		}
		in.line++

		var execErr error
		if strings.HasSuffix(text, "\n") {
			execErr = in.Exec(strings.TrimSuffix(text, "\n"))
		} else if !skipLine(text) {
			execErr = server.WrapErrorf(ErrUnterminated, server.ErrBadParamInput, "line %d", in.line)
		}

		if execErr != nil {
			in.failed++
			if werr := in.reportError(); werr != nil {
				return werr
			}
		}
		if err != nil {
			return nil
		}
	}
}

func skipLine(line string) bool {
	return line == "" || line[0] == '#'
}

func (in *Interpreter) reportError() error {
	if _, err := in.errColor.Fprint(in.errOut, "ERROR"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(in.errOut, " %d\n", in.line)
	return err
}

// Exec. eksekusi satu baris tanpa '\n'.
func (in *Interpreter) Exec(line string) error {
	if skipLine(line) {
		return nil
	}

	fields := strings.Split(line, string(roadmap.Separator))
	switch fields[0] {
	case "addRoad":
		if err := fieldCount(fields, 5); err != nil {
			return err
		}
		length, err := parseLength(fields[3])
		if err != nil {
			return err
		}
		year, err := parseYear(fields[4])
		if err != nil {
			return err
		}
		return in.m.AddRoad(fields[1], fields[2], length, year)

	case "repairRoad":
		if err := fieldCount(fields, 4); err != nil {
			return err
		}
		year, err := parseYear(fields[3])
		if err != nil {
			return err
		}
		return in.m.RepairRoad(fields[1], fields[2], year)

	case "getRouteDescription":
		if err := fieldCount(fields, 2); err != nil {
			return err
		}
		id, err := parseRouteID(fields[1])
		if err != nil {
			return err
		}
		desc, err := in.m.RouteDescription(id)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(in.out, desc)
		return err

	case "newRoute":
		if err := fieldCount(fields, 4); err != nil {
			return err
		}
		id, err := parseRouteID(fields[1])
		if err != nil {
			return err
		}
		return in.m.NewRoute(id, fields[2], fields[3])

	case "extendRoute":
		if err := fieldCount(fields, 3); err != nil {
			return err
		}
		id, err := parseRouteID(fields[1])
		if err != nil {
			return err
		}
		return in.m.ExtendRoute(id, fields[2])

	case "removeRoad":
		if err := fieldCount(fields, 3); err != nil {
			return err
		}
		return in.m.RemoveRoad(fields[1], fields[2])

	case "removeRoute":
		if err := fieldCount(fields, 2); err != nil {
			return err
		}
		id, err := parseRouteID(fields[1])
		if err != nil {
			return err
		}
		return in.m.RemoveRoute(id)
	}

	if isDigits(fields[0]) {
		return in.defineRoute(fields)
	}
	return server.WrapErrorf(ErrUnknownCommand, server.ErrBadParamInput, "line %d: %q", in.line, fields[0])
}

// defineRoute. id;city;length;year;city;...;city
func (in *Interpreter) defineRoute(fields []string) error {
	if len(fields) < 5 || (len(fields)-2)%3 != 0 {
		return server.WrapErrorf(ErrFieldCount, server.ErrBadParamInput, "route definition with %d fields", len(fields))
	}
	id, err := parseRouteID(fields[0])
	if err != nil {
		return err
	}

	hops := (len(fields) - 2) / 3
	cities := make([]string, 0, hops+1)
	lengths := make([]uint32, 0, hops)
	years := make([]int32, 0, hops)
	for i := 1; i+1 < len(fields); i += 3 {
		length, err := parseLength(fields[i+1])
		if err != nil {
			return err
		}
		year, err := parseYear(fields[i+2])
		if err != nil {
			return err
		}
		cities = append(cities, fields[i])
		lengths = append(lengths, length)
		years = append(years, year)
	}
	cities = append(cities, fields[len(fields)-1])

	return in.m.DefineRoute(id, cities, lengths, years)
}

func fieldCount(fields []string, want int) error {
	if len(fields) != want {
		return server.WrapErrorf(ErrFieldCount, server.ErrBadParamInput, "%s: got %d fields, want %d", fields[0], len(fields), want)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseLength(s string) (uint32, error) {
	if !isDigits(s) {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "length %q", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "length %q", s)
	}
	length, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "length %q", s)
	}
	return length, nil
}

func parseYear(s string) (int32, error) {
	digits := strings.TrimPrefix(s, "-")
	if !isDigits(digits) {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "year %q", s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "year %q", s)
	}
	year, err := safecast.Conv[int32](n)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "year %q", s)
	}
	return year, nil
}

// parseRouteID. id di luar [1,999] ditolak roadmap, di sini cukup angka yang muat di int.
func parseRouteID(s string) (int, error) {
	if !isDigits(s) {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "route id %q", s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "route id %q", s)
	}
	id, err := safecast.Conv[int](n)
	if err != nil {
		return 0, server.WrapErrorf(ErrNumber, server.ErrBadParamInput, "route id %q", s)
	}
	return id, nil
}
