package jobstore

// lane serializes remote calls for one logical record.
type lane struct {
	// tail is closed when the most recently enqueued call has finished.
	tail chan struct{}
	// pending counts enqueued calls that have not finished.
	pending int
	// remoteID is the id the remote knows the record by; empty while the
	// create is in flight.
	remoteID string
	// aborted is set when the create failed; later calls are dropped.
	aborted bool
}

// ticket is one enqueued call's position in a lane.
type ticket struct {
	key  string
	prev chan struct{}
	done chan struct{}
}

// enqueue appends a call to the lane for key, creating the lane if needed.
// Callers must hold s.mu.
func (s *Store) enqueue(key, remoteID string) ticket {
	l, ok := s.lanes[key]
	if !ok {
		l = &lane{remoteID: remoteID}
		s.lanes[key] = l
	}
	t := ticket{key: key, prev: l.tail, done: make(chan struct{})}
	l.tail = t.done
	l.pending++
	return t
}

// wait blocks until every call enqueued before t has finished, then reports
// the record's remote id and whether its create was aborted.
func (s *Store) wait(t ticket) (string, bool) {
	if t.prev != nil {
		<-t.prev
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.lanes[t.key]
	return l.remoteID, l.aborted
}

// release marks t finished and drops the lane once it is idle.
func (s *Store) release(t ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(t)
}

func (s *Store) releaseLocked(t ticket) {
	l := s.lanes[t.key]
	l.pending--
	close(t.done)
	if l.pending > 0 {
		return
	}
	delete(s.lanes, t.key)
	if s.indexLocked(t.key) < 0 {
		for id, key := range s.aliases {
			if key == t.key {
				delete(s.aliases, id)
			}
		}
	}
}
