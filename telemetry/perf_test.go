package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorWindow(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 6; i++ {
		p.StartTick()
		p.StartPhase(PhaseStep)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseRender)
		p.EndTick()
	}

	if total := p.Total(); total < time.Millisecond {
		t.Errorf("total = %v, want >= 1ms", total)
	}
	if avg := p.Avg(PhaseStep); avg < time.Millisecond {
		t.Errorf("step avg = %v, want >= 1ms", avg)
	}

	names := p.SortedNames()
	if len(names) != 2 || names[0] != PhaseRender || names[1] != PhaseStep {
		t.Errorf("sorted names = %v, want [render step]", names)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(8)
	if p.Total() != 0 {
		t.Errorf("total on empty collector = %v, want 0", p.Total())
	}
	if p.Avg(PhaseStep) != 0 {
		t.Errorf("avg on empty collector = %v, want 0", p.Avg(PhaseStep))
	}
}

func TestPerfCollectorMinWindow(t *testing.T) {
	p := NewPerfCollector(0)
	p.StartTick()
	p.EndTick()
	if p.Total() < 0 {
		t.Error("negative tick duration")
	}
}
