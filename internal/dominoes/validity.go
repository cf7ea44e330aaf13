package dominoes

// validate recomputes every marker's validity from overlap queries. A marker
// is valid when nothing but sensors overlaps it. The aggregate is true for an
// empty layout.
func (s *Session) validate() {
	s.valid = true
	for i, id := range s.markerIDs {
		ok := true
		for _, other := range s.engine.Overlaps(id) {
			if other == id {
				continue
			}
			if b, found := s.engine.Body(other); found && b.Sensor {
				continue
			}
			ok = false
			break
		}
		s.markers[i].Valid = ok
		s.valid = s.valid && ok
	}
}

// Valid reports whether every marker is valid.
func (s *Session) Valid() bool {
	return s.valid
}

// InvalidCount returns the number of markers currently flagged invalid.
func (s *Session) InvalidCount() int {
	n := 0
	for _, m := range s.markers {
		if !m.Valid {
			n++
		}
	}
	return n
}
