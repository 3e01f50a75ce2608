package persistence

// forEachChunk walks [0,total) in chunks of at most limit and calls fn
// with each half-open range. It stops at the first error, leaving
// earlier chunks applied.
func forEachChunk(total, limit int, fn func(start, end int) error) error {
	if limit <= 0 {
		limit = total
	}
	for start := 0; start < total; start += limit {
		end := start + limit
		if end > total {
			end = total
		}
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}
