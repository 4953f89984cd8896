package pool

import "sync"

// Parallelize splits the index range [first, last) into contiguous
// blocks, pushes one task per block invoking blockFn(start, end), and
// blocks the caller until every block has finished. The blocks exactly
// cover the range with no gaps or overlaps; blockFn should typically loop
// "for i := start; i < end; i++".
//
// maxBlocks caps the number of blocks; zero means one block per worker.
// An empty range is a no-op, and reversed bounds are swapped rather than
// rejected. A panic inside blockFn marks its block finished and is
// otherwise discarded, like any Push task.
func (p *Pool) Parallelize(first, last int, blockFn func(start, end int), maxBlocks int) {
	if first == last {
		return
	}
	if last < first {
		first, last = last, first
	}
	if maxBlocks <= 0 {
		maxBlocks = p.ThreadCount()
	}

	total := last - first
	blockCount := maxBlocks
	if total < blockCount {
		blockCount = total
	}
	blockSize := total / blockCount

	var blocks sync.WaitGroup
	blocks.Add(blockCount)
	for b := range blockCount {
		start := first + b*blockSize
		end := start + blockSize
		if b == blockCount-1 {
			// The final block absorbs the division remainder.
			end = last
		}
		p.Push(func() {
			defer blocks.Done()
			blockFn(start, end)
		})
	}

	blocks.Wait()
}
