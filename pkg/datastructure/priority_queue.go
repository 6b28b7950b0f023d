package datastructure

import "math"

const (
	// Infinity. distance node yang belum tercapai.
	Infinity = uint64(math.MaxUint64)
	// UnreachedYear. year label node yang belum tercapai, lebih buruk dari semua year valid.
	UnreachedYear = int32(math.MinInt32)
)

type PriorityQueueNode struct {
	ID   int32
	Dist uint64
	// Year adalah oldest year di best path sejauh ini.
	Year int32
}

// MinHeap binary heap priorityqueue buat shortest path. semua node (city) udah di insert dari awal dengan Dist = Infinity,
// pos[id] nyimpen index node id di heap, jadi DecreaseKey & Contains nya gak perlu linear scan.
type MinHeap struct {
	heap []PriorityQueueNode
	pos  []int
}

// NewMinHeap. buat heap berisi node 0..n-1 dengan Dist = Infinity.
func NewMinHeap(n int) *MinHeap {
	h := &MinHeap{
		heap: make([]PriorityQueueNode, n),
		pos:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		h.heap[i] = PriorityQueueNode{ID: int32(i), Dist: Infinity, Year: UnreachedYear}
		h.pos[i] = i
	}
	return h
}

// less. urutan komposit: distance ascending, kalau distance sama year yang lebih baru duluan.
func (h *MinHeap) less(a, b PriorityQueueNode) bool {
	if a.Dist != b.Dist {
		return a.Dist < b.Dist
	}
	return NewerYear(a.Year, b.Year)
}

// parent get index dari parent
func (h *MinHeap) parent(index int) int {
	return (index - 1) / 2
}

// leftChild get index dari left child
func (h *MinHeap) leftChild(index int) int {
	return 2*index + 1
}

// rightChild get index dari right child
func (h *MinHeap) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap) swap(i, j int) {
	h.pos[h.heap[i].ID] = j
	h.pos[h.heap[j].ID] = i
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

// heapifyUp mempertahankan heap property. check apakah parent dari index lebih besar kalau iya swap, then lanjut ke parent.  O(logN) tree height.
func (h *MinHeap) heapifyUp(index int) {
	for index != 0 && h.less(h.heap[index], h.heap[h.parent(index)]) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown mempertahankan heap property. check apakah nilai salah satu children dari index lebih kecil kalau iya swap, then lanjut ke children yang kecil tadi.  O(logN) tree height.
func (h *MinHeap) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.less(h.heap[left], h.heap[smallest]) {
			smallest = left
		}
		if right < len(h.heap) && h.less(h.heap[right], h.heap[smallest]) {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

// isEmpty check apakah heap kosong
func (h *MinHeap) isEmpty() bool {
	return len(h.heap) == 0
}

// Size ukuran heap
func (h *MinHeap) Size() int {
	return len(h.heap)
}

// Contains. O(1), true kalau node id belum di extract.
func (h *MinHeap) Contains(id int32) bool {
	if id < 0 || int(id) >= len(h.pos) {
		return false
	}
	return h.pos[id] < len(h.heap)
}

// GetMin mendapatkan nilai minimum dari min-heap (index 0)
func (h *MinHeap) GetMin() (PriorityQueueNode, bool) {
	if h.isEmpty() {
		return PriorityQueueNode{}, false
	}
	return h.heap[0], true
}

// DecreaseKey. update Dist & Year node id lalu heapifyUp. caller harus memastikan key baru tidak lebih buruk dari key lama
// dan node id masih ada di heap.
func (h *MinHeap) DecreaseKey(id int32, dist uint64, year int32) {
	i := h.pos[id]
	h.heap[i].Dist = dist
	h.heap[i].Year = year
	h.heapifyUp(i)
}

// ExtractMin ambil nilai minimum dari min-heap (index 0) & pop dari heap. root diganti node terakhir lalu heapifyDown(0). O(logN)
func (h *MinHeap) ExtractMin() (PriorityQueueNode, bool) {
	if h.isEmpty() {
		return PriorityQueueNode{}, false
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.heapifyDown(0)

	return root, true
}
