package planner

// BisectPlan implements spec.md §4.E: a balanced recursive bisection of
// the class-id space across a fixed thread count, producing a tree of
// tasks consumed step by step behind a barrier.
//
// Each internal tree node owns a thread-range [threadBegin, threadEnd)
// and a class set. If the thread range has width 1 or the class set has
// at most two classes, the node is a leaf and emits a self-task covering
// every pair within its class set. Otherwise it splits its class set into
// two subsets of roughly equal total row count (greedy balance over
// classes already sorted by descending count, grounded on
// _examples/original_source/multithread/fast_plan.cpp's FindNextStep),
// emits a cross-task for the split, and recurses into both halves at the
// next depth with the thread range split in two.
//
// A node's depth becomes its plan step; its threadBegin becomes the
// worker slot that owns its task. Different branches may bottom out at
// different depths, so ThreadsForStep legitimately varies across steps.
type BisectPlan struct {
	maxThreads  int
	tasksByStep []map[int]Task
}

// NewBisectPlan builds a bisection plan for classCount classes with the
// given per-class row counts, targeting threads worker slots. counts must
// be sorted descending, as partition.Partition guarantees. Panics if
// threads < 1: a caller requesting zero or negative worker slots is a
// programmer error, not a runtime condition to clamp away.
func NewBisectPlan(counts []int, threads int) *BisectPlan {
	if threads < 1 {
		panic("planner: NewBisectPlan(threads<1)")
	}
	if len(counts) <= 1 {
		return &BisectPlan{maxThreads: threads}
	}

	classes := make([]int, len(counts))
	for i := range classes {
		classes[i] = i
	}

	var nodes []bisectNode
	buildBisectTree(classes, counts, 0, threads, 0, &nodes)

	maxDepth := 0
	for _, n := range nodes {
		if n.depth > maxDepth {
			maxDepth = n.depth
		}
	}

	tasksByStep := make([]map[int]Task, maxDepth+1)
	for i := range tasksByStep {
		tasksByStep[i] = make(map[int]Task)
	}
	for _, n := range nodes {
		tasksByStep[n.depth][n.threadSlot] = n.task
	}

	return &BisectPlan{maxThreads: threads, tasksByStep: tasksByStep}
}

type bisectNode struct {
	depth      int
	threadSlot int
	task       Task
}

func buildBisectTree(classes, counts []int, threadBegin, threadEnd, depth int, out *[]bisectNode) {
	width := threadEnd - threadBegin
	if width <= 1 || len(classes) <= 2 {
		*out = append(*out, bisectNode{depth: depth, threadSlot: threadBegin, task: Task{Left: classes}})
		return
	}

	left, right := splitByCount(classes, counts)
	*out = append(*out, bisectNode{depth: depth, threadSlot: threadBegin, task: Task{Left: left, Right: right}})

	mid := threadBegin + width/2
	buildBisectTree(left, counts, threadBegin, mid, depth+1, out)
	buildBisectTree(right, counts, mid, threadEnd, depth+1, out)
}

// splitByCount partitions classes (assumed sorted by descending count)
// into two subsets of roughly equal total count via a single greedy pass:
// always extend whichever running sum is currently smaller. Because
// classes arrive largest-first, this converges to a balanced split
// without the two-pointer index shuffle fast_plan.cpp uses to achieve the
// same property over an unsorted array.
func splitByCount(classes, counts []int) (left, right []int) {
	sum1, sum2 := 0, 0
	for _, c := range classes {
		if sum1 <= sum2 {
			left = append(left, c)
			sum1 += counts[c]
		} else {
			right = append(right, c)
			sum2 += counts[c]
		}
	}
	return left, right
}

// StepCount reports the number of barrier-synchronized phases. Zero means
// there is no work at all (fewer than two classes).
func (p *BisectPlan) StepCount() int { return len(p.tasksByStep) }

// MaxThreads reports the number of worker slots the plan was built for.
func (p *BisectPlan) MaxThreads() int { return p.maxThreads }

// ThreadsForStep reports how many worker slots have non-empty work in step s.
func (p *BisectPlan) ThreadsForStep(step int) int {
	if step < 0 || step >= len(p.tasksByStep) {
		return 0
	}
	return len(p.tasksByStep[step])
}

// Task returns the (possibly empty) task assigned to thread t in step s.
func (p *BisectPlan) Task(step, thread int) Task {
	if step < 0 || step >= len(p.tasksByStep) {
		return Task{}
	}
	if t, ok := p.tasksByStep[step][thread]; ok {
		return t
	}
	return Task{}
}
