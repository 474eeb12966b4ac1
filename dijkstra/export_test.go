package dijkstra

// SetPredecessor overwrites the stored predecessor of v.
// Tests use it to corrupt a Result and exercise ErrInvariantViolation.
func SetPredecessor(r *Result, v, p int) { r.prev[v] = p }
