package ecs

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Stage is a named slot in the update pipeline. Stage order is an
// explicit contract, not an engine implementation detail.
type Stage struct {
	Name    string
	Systems []System
}

func NewStage(name string, systems ...System) Stage {
	return Stage{Name: name, Systems: append([]System(nil), systems...)}
}

// Scheduler runs stages in declaration order, then flushes events.
type Scheduler struct {
	stages []Stage
}

func NewScheduler(stages ...Stage) *Scheduler {
	return &Scheduler{stages: append([]Stage(nil), stages...)}
}

func (s *Scheduler) Add(stage Stage) {
	s.stages = append(s.stages, stage)
}

func (s *Scheduler) Update(w *World) {
	for _, stage := range s.stages {
		for _, system := range stage.Systems {
			if system != nil {
				system.Update(w)
			}
		}
	}
	w.events.flush()
}

// StageNames returns the pipeline order.
func (s *Scheduler) StageNames() []string {
	names := make([]string, 0, len(s.stages))
	for _, stage := range s.stages {
		names = append(names, stage.Name)
	}
	return names
}
