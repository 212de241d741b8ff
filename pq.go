package astar

// PriorityQueue orders frontier nodes by FScore. Equal scores pop the most
// recently inserted node first.
type PriorityQueue []*Node

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	fi, fj := queue[i].FScore(), queue[j].FScore()
	if fi != fj {
		return fi < fj
	}
	return queue[i].id > queue[j].id
}
func (queue PriorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *PriorityQueue) Push(x any) {
	item := x.(*Node)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

// find returns the queued node equivalent to node, or nil.
func (queue PriorityQueue) find(node *Node) *Node {
	for _, item := range queue {
		if item.Equivalent(node) {
			return item
		}
	}
	return nil
}
