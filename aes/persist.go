// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fluxmap/fluxmap/geom"
)

// A SavedAxis is the persisted anchor transform of one shared axis,
// for round-tripping user-dragged positions across reloads.
type SavedAxis struct {
	ID        string         `json:"id"`
	Side      string         `json:"side"`
	Transform geom.Transform `json:"transform"`
}

// ExportTransforms returns the anchor transform of every shared axis,
// sorted by id and side so the output is stable.
func (s *Scene) ExportTransforms() []SavedAxis {
	saved := make([]SavedAxis, 0, len(s.Axes))
	for key, axis := range s.Axes {
		saved = append(saved, SavedAxis{
			ID:        key.ID,
			Side:      key.Side.String(),
			Transform: axis.Transform,
		})
	}
	sort.Slice(saved, func(i, j int) bool {
		if saved[i].ID != saved[j].ID {
			return saved[i].ID < saved[j].ID
		}
		return saved[i].Side < saved[j].Side
	})
	return saved
}

// RestoreTransforms records persisted anchor transforms. Axes created
// after this call reuse them verbatim instead of deriving an anchor
// from the element geometry.
func (s *Scene) RestoreTransforms(saved []SavedAxis) error {
	for _, sa := range saved {
		side, ok := geom.ParseSide(sa.Side)
		if !ok {
			return fmt.Errorf("restoring axis %q: unknown side %q", sa.ID, sa.Side)
		}
		s.saved[AxisKey{ID: sa.ID, Side: side}] = sa.Transform
	}
	return nil
}

// WriteTransforms writes the exported transforms as JSON.
func (s *Scene) WriteTransforms(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.ExportTransforms()); err != nil {
		return fmt.Errorf("writing axis transforms: %w", err)
	}
	return nil
}

// ReadTransforms restores transforms from JSON written by
// WriteTransforms.
func (s *Scene) ReadTransforms(r io.Reader) error {
	var saved []SavedAxis
	if err := json.NewDecoder(r).Decode(&saved); err != nil {
		return fmt.Errorf("reading axis transforms: %w", err)
	}
	return s.RestoreTransforms(saved)
}
