package repository

import (
	"testing"

	"workasana/internal/domain"
)

func TestTaskFilter_Empty(t *testing.T) {
	where, args := TaskFilter{}.whereClause()
	if where != "" {
		t.Fatalf("expected no clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestTaskFilter_SingleField(t *testing.T) {
	where, args := TaskFilter{Status: domain.StatusCompleted}.whereClause()
	if where != " WHERE t.status = $1" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if len(args) != 1 || args[0] != "Completed" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestTaskFilter_CombinedFieldsAreANDed(t *testing.T) {
	f := TaskFilter{
		Name:      "Fix login",
		ProjectID: 3,
		Status:    domain.StatusInProgress,
	}
	where, args := f.whereClause()
	want := " WHERE t.name = $1 AND t.project_id = $2 AND t.status = $3"
	if where != want {
		t.Fatalf("clause = %q, want %q", where, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
}

func TestTaskFilter_ArrayFieldsUseContainment(t *testing.T) {
	where, args := TaskFilter{OwnerID: 7, Tag: "urgent"}.whereClause()
	want := " WHERE $1 = ANY(t.owners) AND $2 = ANY(t.tags)"
	if where != want {
		t.Fatalf("clause = %q, want %q", where, want)
	}
	if args[0] != int64(7) || args[1] != "urgent" {
		t.Fatalf("unexpected args: %v", args)
	}
}
