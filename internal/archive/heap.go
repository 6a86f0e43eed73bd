package archive

// tombstoneHeap is a min-heap of slice indices awaiting compaction,
// grounded on the teacher's container/heap event queue pattern
// (see DESIGN.md). Popping always yields the earliest tombstoned index.
type tombstoneHeap []int

func (h tombstoneHeap) Len() int            { return len(h) }
func (h tombstoneHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h tombstoneHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tombstoneHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *tombstoneHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
