package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tasksync/internal/service"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num  int   // 1-based position in the listed tasks
	ID   int64 // store ID, set when ByID
	ByID bool  // true for "#<id>" references
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference from the first arg.
//
// Parsing rules:
// 1. All digits (e.g., 3) → position as printed by the list command
// 2. '#' followed by digits (e.g., #42) → store ID
// 3. Otherwise → error: invalid task reference: <ref>
func ParseTaskRef(args []string) (TaskRef, error) {
	if len(args) == 0 {
		return TaskRef{}, ErrTaskRefRequired
	}

	arg := args[0]

	if isAllDigits(arg) {
		num, err := strconv.Atoi(arg)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{Num: num}, nil
	}

	if len(arg) > 1 && arg[0] == '#' && isAllDigits(arg[1:]) {
		id, err := strconv.ParseInt(arg[1:], 10, 64)
		if err != nil {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		return TaskRef{ID: id, ByID: true}, nil
	}

	return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
}

// Resolve finds the referenced task in tasks.
func (r TaskRef) Resolve(tasks []service.Task) (service.Task, error) {
	if r.ByID {
		for _, t := range tasks {
			if t.ID == r.ID {
				return t, nil
			}
		}
		return service.Task{}, fmt.Errorf("task not found: #%d", r.ID)
	}
	if r.Num < 1 || r.Num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", r.Num)
	}
	return tasks[r.Num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
