package request

import "testing"

func TestChecklistOpRequest_Resolve(t *testing.T) {
	done := true
	r := ChecklistOpRequest{Op: " set_done ", Key: " medidas ", Done: &done}
	if got := r.ResolveOp(); got != "set_done" {
		t.Fatalf("expected set_done, got %q", got)
	}
	if got := r.ResolveKey(); got != "medidas" {
		t.Fatalf("expected medidas, got %q", got)
	}
	if !r.ResolveDone() {
		t.Fatalf("expected done true")
	}

	r2 := ChecklistOpRequest{Op: "add_item"}
	if r2.ResolveDone() {
		t.Fatalf("expected done false when omitted")
	}
}

func TestReorderRequest_ResolveOrderedIDs(t *testing.T) {
	r := ReorderRequest{OrderedIDs: []string{" a ", "b", " c"}}
	got := r.ResolveOrderedIDs()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestTicketStatusRequest_ResolveStatus(t *testing.T) {
	r := TicketStatusRequest{Status: " completed "}
	if got := r.ResolveStatus(); got != "completed" {
		t.Fatalf("expected completed, got %q", got)
	}
}

func TestWorkOrderRequest_Resolve(t *testing.T) {
	r := WorkOrderRequest{Title: " Projeto Sala ", ArchitectID: " arch-1 "}
	if got := r.ResolveTitle(); got != "Projeto Sala" {
		t.Fatalf("expected Projeto Sala, got %q", got)
	}
	if got := r.ResolveArchitectID(); got != "arch-1" {
		t.Fatalf("expected arch-1, got %q", got)
	}

	e := WorkOrderCreatedEventRequest{WorkOrderID: " wo-1 ", ArchitectID: "   "}
	if got := e.ResolveWorkOrderID(); got != "wo-1" {
		t.Fatalf("expected wo-1, got %q", got)
	}
	if got := e.ResolveArchitectID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
