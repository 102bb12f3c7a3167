package output

import (
	"bytes"
	"testing"

	"taskman/internal/service"
	"taskman/internal/testutil"
)

func TestFormatTasks_Golden(t *testing.T) {
	tasks := []service.Task{
		{ID: "1", Title: "Buy milk", Description: "semi-skimmed", Status: service.StatusTodo},
		{ID: "2", Title: "Walk dog", Status: service.StatusInProgress},
		{ID: "3", Title: "Pay rent", Status: service.StatusDone},
	}

	var buf bytes.Buffer
	FormatTasks(&buf, tasks)
	testutil.Golden(t, "tasks", buf.Bytes())
}

func TestFormatTasks_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatTasks(&buf, nil)
	if buf.String() != "No tasks yet.\n" {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestFormatTaskIDs(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskIDs(&buf, []service.Task{{ID: "abc", Title: "Buy milk", Status: service.StatusDone}})
	expected := "abc\tDONE\tBuy milk\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"":            "(untitled)",
		"   ":         "(untitled)",
		"line1\nline2": "line1 line2",
		"a\r\nb":      "a  b",
		"Buy milk":    "Buy milk",
	}
	for in, want := range cases {
		if got := NormalizeTitle(in); got != want {
			t.Errorf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestStatusBadge(t *testing.T) {
	if got := StatusBadge(service.StatusInProgress); got != "[IN_PROGRESS]" {
		t.Errorf("expected [IN_PROGRESS], got %q", got)
	}
	if got := StatusBadge(""); got != "[?]" {
		t.Errorf("expected [?], got %q", got)
	}
}
