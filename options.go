package scatter

// DefaultChunkSize is the number of points rasterized per chunk when
// WithChunkSize is not given. Chunking only bounds peak scratch memory;
// the result is the same for every positive chunk size.
const DefaultChunkSize = 1 << 20

// Option configures a Simplify call.
// Use functional options to customize behavior.
//
// Example:
//
//	// Defaults: 1Mi points per chunk, sequential.
//	retained, err := scatter.Simplify(points, axis, grid, 2)
//
//	// Smaller chunks, parallel stamping:
//	retained, err := scatter.Simplify(points, axis, grid, 2,
//	    scatter.WithChunkSize(1<<16), scatter.WithWorkers(0))
type Option func(*options)

// options holds optional configuration for a Simplify call.
type options struct {
	chunkSize int
	workers   int
}

// defaultOptions returns the default Simplify options.
func defaultOptions() options {
	return options{
		chunkSize: DefaultChunkSize,
		workers:   1, // sequential unless asked otherwise
	}
}

// WithChunkSize sets the maximum number of points rasterized per chunk.
// Peak scratch memory is proportional to the chunk size. Simplify rejects
// n <= 0 with ErrChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithWorkers sets the number of goroutines stamping each chunk.
// The buffer rows are split into one contiguous band per worker, so the
// result is bit-identical to the sequential path. n <= 0 means GOMAXPROCS.
// The default is 1 (sequential), which is fastest for small grids.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
