// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"
)

func TestLineLRU(t *testing.T) {
	c := new(lineCache)
	put := func(i int) {
		c.Put(lineKey{str: strconv.Itoa(i)}, nil)
	}
	get := func(i int) bool {
		_, ok := c.Get(lineKey{str: strconv.Itoa(i)})
		return ok
	}
	testLRU(t, put, get)
}

func testLRU(t *testing.T, put func(i int), get func(i int) bool) {
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
