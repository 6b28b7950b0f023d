package datastructure

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameIndexSetGet(t *testing.T) {
	ni := NewNameIndex(100)

	ni.Set("bwoxsfcals", 7)
	id, ok := ni.Get("bwoxsfcals")
	assert.True(t, ok)
	assert.Equal(t, int32(7), id)

	_, ok = ni.Get("bwoxsfcal")
	assert.False(t, ok)

	ni.Set("bwoxsfcals", 8)
	id, _ = ni.Get("bwoxsfcals")
	assert.Equal(t, int32(8), id)
	assert.Equal(t, 1, ni.Len())
}

func TestNameIndexRehash(t *testing.T) {
	ni := NewNameIndex(4)

	n := 100000
	for i := 0; i < n; i++ {
		ni.Set(strconv.Itoa(10000000+i), int32(i))
	}

	assert.Equal(t, n, ni.Len())
	assert.Less(t, ni.Len(), ni.Buckets()*3/4)

	for i := 0; i < n; i++ {
		id, ok := ni.Get(strconv.Itoa(10000000 + i))
		assert.True(t, ok)
		assert.Equal(t, int32(i), id)
	}
}

func TestHashName(t *testing.T) {
	// djb2("a") = 5381*33 + 97
	assert.Equal(t, (5381*33+97)%1000, hashName("a", 1000))
	assert.Equal(t, 5381%1000, hashName("", 1000))
}
