// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/opentype"
)

// Cache maps fonts to faces.
type Cache struct {
	mu    sync.Mutex
	faces map[faceKey]*Face
}

type faceKey struct {
	font *opentype.Font
	size int
}

var defaultCache Cache

// Face returns the face for f, creating it if needed. It panics
// if the typeface cannot produce a face, which only happens for
// fonts that failed to parse.
func (c *Cache) Face(f Font) *Face {
	f = f.normalize()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.faces == nil {
		c.faces = make(map[faceKey]*Face)
	}
	k := faceKey{f.Typeface, f.Size}
	if face, ok := c.faces[k]; ok {
		return face
	}
	face, err := NewFace(f.Typeface, f.Size)
	if err != nil {
		panic(fmt.Errorf("text: face of size %d: %v", f.Size, err))
	}
	c.faces[k] = face
	return face
}
