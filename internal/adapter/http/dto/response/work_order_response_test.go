package response

import (
	"testing"
	"time"

	"studio_arq/internal/domain/entities"
)

func TestFromWorkOrder(t *testing.T) {
	now := time.Now().UTC()
	wo := entities.WorkOrder{
		ID:          "wo-1",
		Title:       "Projeto Sala",
		Status:      entities.WorkOrderStatusOpen,
		ArchitectID: "arch-1",
		Checklist: entities.Checklist{
			"briefing": {Text: "Briefing realizado?", Done: true},
			"medidas":  {Text: "Medidas conferidas?", Done: false},
			"entrega":  {Text: "Cliente aprovou o projeto final?", Done: false},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromWorkOrder(wo, 100.0/3.0)
	if res.ID != "wo-1" || res.Title != "Projeto Sala" || res.Status != "open" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Checklist) != 3 || !res.Checklist["briefing"].Done || res.Checklist["medidas"].Text != "Medidas conferidas?" {
		t.Fatalf("unexpected checklist: %+v", res.Checklist)
	}
	// One third rounds to two decimals only at the display edge.
	if res.PercentComplete != 33.33 {
		t.Fatalf("expected 33.33, got %v", res.PercentComplete)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromOrderOutcomes(t *testing.T) {
	outcomes := []entities.OrderWriteOutcome{
		{ID: "a", Index: 0, OK: true},
		{ID: "b", Index: 1, OK: false, Err: errFake("boom")},
	}

	res := FromOrderOutcomes("g1", outcomes)
	if res.GroupKey != "g1" || len(res.Outcomes) != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Failed != 1 || res.Outcomes[1].Error != "boom" || res.Outcomes[0].Error != "" {
		t.Fatalf("unexpected outcomes: %+v", res.Outcomes)
	}
	if res.Superseded {
		t.Fatalf("superseded must be unset for applied reorders")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }
