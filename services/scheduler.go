// backend/services/scheduler.go
package services

import (
	"log"
	"time"
)

// Job is one periodic fetch-and-store action.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func() error
}

// Scheduler runs one independent loop per registered job for the process
// lifetime. Ticks within a job are strictly sequential; jobs never affect
// each other. A failing tick is logged and the loop continues at the next
// interval. There is no cancellation or shutdown sequencing.
type Scheduler struct {
	jobs []Job
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register adds a job to the schedule. Must be called before Start.
func (s *Scheduler) Register(name string, interval time.Duration, run func() error) {
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Run: run})
}

// Start launches one goroutine per job and returns immediately.
func (s *Scheduler) Start() {
	for _, job := range s.jobs {
		go runLoop(job)
	}
	log.Printf("Scheduler: started %d background jobs", len(s.jobs))
}

func runLoop(job Job) {
	log.Printf("Scheduler: starting %s job (interval: %s)", job.Name, job.Interval)
	for {
		if err := job.Run(); err != nil {
			log.Printf("ERROR Scheduler: %s tick failed: %v", job.Name, err)
		}
		// sleep after the run: drift by the action duration is accepted
		time.Sleep(job.Interval)
	}
}
