package crawler

// Frontier is the BFS work queue plus the membership sets that enforce the
// single-visit invariant. Every URL is in at most one of three states:
// queued, in-flight, or visited. Enqueue checks both sets, so a URL that has
// ever been queued or visited can never be queued again.
//
// Design decision: Frontier has no mutex. It is owned by the Crawler's
// control loop and mutated only between batches, so there is a single
// writer by construction; a lock would suggest a concurrency contract the
// type does not have.
type Frontier struct {
	// queue holds pending canonical URLs in discovery order. Appending to
	// the back and taking from the front is what makes the traversal
	// breadth-first.
	queue []string

	// queued tracks members of queue for O(1) duplicate checks.
	queued map[string]struct{}

	// visited tracks URLs that have been selected into a batch, whether the
	// fetch later succeeded or failed. Marking happens at selection time so
	// a URL can never be dispatched twice.
	visited map[string]struct{}
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queued:  make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
}

// Enqueue appends a canonical URL to the back of the queue. It reports
// whether the URL was accepted; URLs already queued or already visited are
// refused.
func (f *Frontier) Enqueue(canonical string) bool {
	if _, ok := f.visited[canonical]; ok {
		return false
	}
	if _, ok := f.queued[canonical]; ok {
		return false
	}
	f.queue = append(f.queue, canonical)
	f.queued[canonical] = struct{}{}
	return true
}

// NextBatch removes up to max URLs from the front of the queue and marks
// them visited (in-flight) before returning them. Entries that were somehow
// visited while queued are skipped rather than dispatched.
func (f *Frontier) NextBatch(max int) []string {
	if max <= 0 {
		return nil
	}
	batch := make([]string, 0, max)
	for len(f.queue) > 0 && len(batch) < max {
		u := f.queue[0]
		f.queue = f.queue[1:]
		delete(f.queued, u)
		if _, ok := f.visited[u]; ok {
			continue
		}
		f.visited[u] = struct{}{}
		batch = append(batch, u)
	}
	return batch
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// VisitedCount returns the number of URLs ever dispatched.
func (f *Frontier) VisitedCount() int {
	return len(f.visited)
}
