package datastructure

const (
	defaultIndexBuckets = 1024
)

type indexEntry struct {
	next  *indexEntry
	key   string
	value int32
}

// NameIndex. chained hash table nama city -> city id. buckets di double & semua entry di rehash
// ketika jumlah entry >= 75% jumlah bucket.
type NameIndex struct {
	buckets []*indexEntry
	count   int
}

func NewNameIndex(buckets int) *NameIndex {
	if buckets <= 0 {
		buckets = defaultIndexBuckets
	}
	return &NameIndex{
		buckets: make([]*indexEntry, buckets),
	}
}

// djb2 hash (seed 5381, hash*33 + c)
func hashName(name string, size int) int {
	hash := uint64(5381)
	for i := 0; i < len(name); i++ {
		hash = (hash << 5) + hash + uint64(name[i])
	}
	return int(hash % uint64(size))
}

func (ni *NameIndex) Len() int {
	return ni.count
}

// Buckets. jumlah bucket saat ini.
func (ni *NameIndex) Buckets() int {
	return len(ni.buckets)
}

func (ni *NameIndex) Get(name string) (int32, bool) {
	for e := ni.buckets[hashName(name, len(ni.buckets))]; e != nil; e = e.next {
		if e.key == name {
			return e.value, true
		}
	}
	return -1, false
}

// Set. insert name -> id, kalau name sudah ada value nya di overwrite.
func (ni *NameIndex) Set(name string, id int32) {
	idx := hashName(name, len(ni.buckets))
	for e := ni.buckets[idx]; e != nil; e = e.next {
		if e.key == name {
			e.value = id
			return
		}
	}

	ni.buckets[idx] = &indexEntry{next: ni.buckets[idx], key: name, value: id}
	ni.count++

	if ni.count >= len(ni.buckets)*3/4 {
		ni.rehash()
	}
}

func (ni *NameIndex) rehash() {
	size := len(ni.buckets) * 2
	buckets := make([]*indexEntry, size)

	for _, head := range ni.buckets {
		var next *indexEntry
		for e := head; e != nil; e = next {
			next = e.next
			idx := hashName(e.key, size)
			e.next = buckets[idx]
			buckets[idx] = e
		}
	}
	ni.buckets = buckets
}
