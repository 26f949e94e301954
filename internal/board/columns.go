package board

import (
	"taskboard/internal/domain"
)

// Column is one status bucket of the board view model. The board view is a
// pure derivation of the task list, never an independent source of truth.
type Column struct {
	Status domain.Status
	Tasks  []*domain.Task
}

// Columns partitions the task list into the four fixed status buckets in a
// single pass. Every bucket is present even when empty, so empty columns
// still render. Order within a bucket follows the order tasks appear in the
// authoritative list.
func Columns(tasks []*domain.Task) []Column {
	statuses := domain.Statuses()

	buckets := make(map[domain.Status][]*domain.Task, len(statuses))
	for _, status := range statuses {
		buckets[status] = []*domain.Task{}
	}

	for _, task := range tasks {
		if _, ok := buckets[task.Status]; !ok {
			// Unknown status from the server; leave the task off the board
			// rather than invent a column for it.
			continue
		}
		buckets[task.Status] = append(buckets[task.Status], task)
	}

	columns := make([]Column, len(statuses))
	for i, status := range statuses {
		columns[i] = Column{Status: status, Tasks: buckets[status]}
	}
	return columns
}

// indexInColumn returns the position a task currently occupies within its
// own status bucket, or -1 when it is not on the board.
func indexInColumn(tasks []*domain.Task, id string) int {
	var status domain.Status
	found := false
	for _, task := range tasks {
		if task.ID == id {
			status = task.Status
			found = true
			break
		}
	}
	if !found {
		return -1
	}

	index := 0
	for _, task := range tasks {
		if task.Status != status {
			continue
		}
		if task.ID == id {
			return index
		}
		index++
	}
	return -1
}
