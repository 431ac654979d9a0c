package commands

import (
	"testing"

	"tasksync/internal/service"
)

func TestParseTaskRef_Numeric(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_ByID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"#42"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID {
		t.Error("expected ByID to be true")
	}
	if ref.ID != 42 {
		t.Errorf("expected ID 42, got %d", ref.ID)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskRef([]string{})
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, arg := range []string{"a1", "#", "#x", "-1", "1.5", "３"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		expectedMsg := "invalid task reference: " + arg
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	}
}

func TestParseTaskRef_Overflow(t *testing.T) {
	if _, err := ParseTaskRef([]string{"#99999999999999999999"}); err == nil {
		t.Error("expected error for id overflow")
	}
}

func TestTaskRef_Resolve(t *testing.T) {
	tasks := []service.Task{{ID: 10, Title: "a"}, {ID: 20, Title: "b"}}

	task, err := TaskRef{Num: 2}.Resolve(tasks)
	if err != nil || task.ID != 20 {
		t.Errorf("expected task 20, got %+v (%v)", task, err)
	}

	task, err = TaskRef{ID: 10, ByID: true}.Resolve(tasks)
	if err != nil || task.ID != 10 {
		t.Errorf("expected task 10, got %+v (%v)", task, err)
	}

	if _, err := (TaskRef{Num: 3}).Resolve(tasks); err == nil || err.Error() != "task number out of range: 3" {
		t.Errorf("expected out of range error, got %v", err)
	}
	if _, err := (TaskRef{Num: 0}).Resolve(tasks); err == nil {
		t.Error("expected error for 0")
	}
	if _, err := (TaskRef{ID: 30, ByID: true}).Resolve(tasks); err == nil || err.Error() != "task not found: #30" {
		t.Errorf("expected not found error, got %v", err)
	}
}
