package cull

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// boxes per goroutine below which splitting up work is not worth it
const minChunkSize = 1024

// Visible appends the indices of all boxes intersecting the frustum to dst.
func Visible(f *Frustum, boxes []Box, dst []int) []int {
	for idx := range boxes {
		if f.Intersects(boxes[idx]) {
			dst = append(dst, idx)
		}
	}

	return dst
}

// VisibleParallel is like Visible but tests chunks of boxes on up to workers
// goroutines. A workers value of zero uses GOMAXPROCS. The returned indices
// are in ascending order.
func VisibleParallel(ctx context.Context, f *Frustum, boxes []Box, workers int) ([]int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if len(boxes) == 0 {
		return nil, ctx.Err()
	}

	chunkSize := max(minChunkSize, (len(boxes)+workers-1)/workers)
	chunkCount := (len(boxes) + chunkSize - 1) / chunkSize

	results := make([][]int, chunkCount)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for chunk := range chunkCount {
		start := chunk * chunkSize
		end := min(start+chunkSize, len(boxes))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var visible []int
			for idx := start; idx < end; idx++ {
				if f.Intersects(boxes[idx]) {
					visible = append(visible, idx)
				}
			}

			results[chunk] = visible
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("cull %d boxes: %w", len(boxes), err)
	}

	var total int
	for _, visible := range results {
		total += len(visible)
	}

	indices := make([]int, 0, total)
	for _, visible := range results {
		indices = append(indices, visible...)
	}

	return indices, nil
}
