package datastructure

import "math"

// NoEdgeYear. oldest year path yang belum punya edge (single city), netral untuk OldestYear.
const NoEdgeYear = int32(math.MaxInt32)

// NewerYear. true kalau year a lebih baru dari b. year dibandingkan sebagai signed integer biasa
// (tahun negatif = sebelum masehi, jadi lebih tua).
func NewerYear(a, b int32) bool {
	return a > b
}

// OldestYear. year yang paling tua dari a & b.
func OldestYear(a, b int32) int32 {
	if NewerYear(a, b) {
		return b
	}
	return a
}

// RouteNode. satu city di route. Length & Year adalah data road ke node berikutnya, 0 di node terakhir.
type RouteNode struct {
	CityID int32
	Length uint32
	Year   int32
}

// Path. urutan city dari source ke destination.
type Path []RouteNode

// Length. total panjang semua road di path.
func (p Path) Length() uint64 {
	sum := uint64(0)
	for i := 0; i+1 < len(p); i++ {
		sum += uint64(p[i].Length)
	}
	return sum
}

// OldestYear. year paling tua di antara road road di path, NoEdgeYear kalau path gak punya road.
func (p Path) OldestYear() int32 {
	oldest := NoEdgeYear
	for i := 0; i+1 < len(p); i++ {
		oldest = OldestYear(oldest, p[i].Year)
	}
	return oldest
}

func (p Path) IndexOf(cityID int32) int {
	for i, n := range p {
		if n.CityID == cityID {
			return i
		}
	}
	return -1
}

func (p Path) Contains(cityID int32) bool {
	return p.IndexOf(cityID) >= 0
}

func (p Path) Cities() []int32 {
	ids := make([]int32, len(p))
	for i, n := range p {
		ids[i] = n.CityID
	}
	return ids
}

func (p Path) Head() int32 {
	return p[0].CityID
}

func (p Path) Tail() int32 {
	return p[len(p)-1].CityID
}

// EdgeIndex. index i dimana (p[i], p[i+1]) adalah road a<->b (arah mana saja), -1 kalau tidak ada.
func (p Path) EdgeIndex(a, b int32) int {
	for i := 0; i+1 < len(p); i++ {
		x, y := p[i].CityID, p[i+1].CityID
		if (x == a && y == b) || (x == b && y == a) {
			return i
		}
	}
	return -1
}

// Append. p diikuti ext, dengan ext[0] == tail p. return path baru, p & ext tidak berubah.
func (p Path) Append(ext Path) Path {
	out := make(Path, 0, len(p)+len(ext)-1)
	out = append(out, p[:len(p)-1]...)
	out = append(out, ext...)
	return out
}

// Prepend. ext diikuti p, dengan tail ext == head p. return path baru.
func (p Path) Prepend(ext Path) Path {
	out := make(Path, 0, len(p)+len(ext)-1)
	out = append(out, ext[:len(ext)-1]...)
	out = append(out, p...)
	return out
}

// ReplaceEdge. ganti road (p[i], p[i+1]) dengan segment seg, dimana seg[0] == p[i] dan tail seg == p[i+1].
// return path baru.
func (p Path) ReplaceEdge(i int, seg Path) Path {
	out := make(Path, 0, len(p)+len(seg)-2)
	out = append(out, p[:i]...)
	out = append(out, seg[:len(seg)-1]...)
	out = append(out, p[i+1:]...)
	return out
}

// Reverse. path dengan urutan terbalik, Length & Year tetap nempel ke road yang sama.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i := range p {
		out[len(p)-1-i].CityID = p[i].CityID
	}
	for i := 0; i+1 < len(p); i++ {
		j := len(p) - 2 - i
		out[j].Length = p[i].Length
		out[j].Year = p[i].Year
	}
	return out
}

// Route. route yang terdaftar dengan id.
type Route struct {
	ID    int
	Nodes Path
}

func NewRoute(id int, nodes Path) *Route {
	return &Route{ID: id, Nodes: nodes}
}

// SetEdgeYear. update year road a<->b di route kalau route lewat road itu.
func (r *Route) SetEdgeYear(a, b int32, year int32) bool {
	i := r.Nodes.EdgeIndex(a, b)
	if i < 0 {
		return false
	}
	r.Nodes[i].Year = year
	return true
}
