// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"image/color"
)

// lineCache keeps the most recently rendered lines of a Face.
type lineCache struct {
	m          map[lineKey]*lineElem
	head, tail *lineElem
}

type lineElem struct {
	next, prev *lineElem
	key        lineKey
	img        *image.RGBA
}

type lineKey struct {
	str   string
	color color.RGBA
}

const maxSize = 1000

func (l *lineCache) Get(k lineKey) (*image.RGBA, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.img, true
	}
	return nil, false
}

func (l *lineCache) Put(k lineKey, img *image.RGBA) {
	if l.m == nil {
		l.m = make(map[lineKey]*lineElem)
		l.head = new(lineElem)
		l.tail = new(lineElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &lineElem{key: k, img: img}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *lineCache) remove(lt *lineElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *lineCache) insert(lt *lineElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
