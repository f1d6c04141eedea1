// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

// AllConditions is the sentinel selecting the union of every
// condition.
const AllConditions = "ALL"

// ConditionState is the process-wide condition selection: the active
// label and the full set of known labels. It is mutated only by user
// selection and by Fill; every pass that needs it receives it
// explicitly.
type ConditionState struct {
	Active string
	Known  []string
}

// Fill derives the known condition list by scanning the bindings:
// labels are deduplicated in load order and "ALL" is appended when
// any non-empty label exists. The active condition is initialized to
// the first known label when unset, and reset when its label
// disappears from the data.
func (cs *ConditionState) Fill(bindings []*Binding) {
	var known []string
	seen := make(map[string]bool)
	for _, b := range bindings {
		if b.Condition == "" || seen[b.Condition] {
			continue
		}
		seen[b.Condition] = true
		known = append(known, b.Condition)
	}
	if len(known) == 0 {
		cs.Known = []string{""}
		cs.Active = ""
		return
	}
	cs.Known = append(known, AllConditions)
	if cs.Active == "" || (!seen[cs.Active] && cs.Active != AllConditions) {
		cs.Active = cs.Known[0]
	}
}

// FilterVisibility hides every encoding whose condition differs from
// the active one, unless the active condition is "ALL". Unconditioned
// encodings are always shown. Popups are exempt; the hover UI owns
// their visibility.
func (s *Scene) FilterVisibility(active string) {
	for _, e := range s.Encodings {
		if e.Popup || e.Condition == "" {
			continue
		}
		e.Visible = e.Condition == active || active == AllConditions
	}
}
