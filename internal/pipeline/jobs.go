package pipeline

import (
	"sync"
	"time"

	"github.com/dgallion1/docsight/internal/report"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusRanking   JobStatus = "ranking"
	StatusCompleted JobStatus = "completed"
	StatusPartial   JobStatus = "partial"
	StatusFailed    JobStatus = "failed"
)

// DocumentInput is one uploaded document awaiting processing.
type DocumentInput struct {
	Name string
	Data []byte
}

// Job tracks the state of a single persona-driven analysis over a
// document set.
type Job struct {
	mu sync.Mutex

	ID          string `json:"job_id"`
	Persona     string `json:"persona"`
	JobToBeDone string `json:"job_to_be_done"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	inputs []DocumentInput
	result *report.Analysis
	errors []string
}

// Progress tracks per-document processing progress.
type Progress struct {
	TotalDocuments     int      `json:"total_documents"`
	DocumentsProcessed int      `json:"documents_processed"`
	SectionsAnalyzed   int      `json:"sections_analyzed"`
	Errors             []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records a per-document error without failing the batch.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrDocumentsProcessed atomically increments documents processed.
func (j *Job) IncrDocumentsProcessed() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.DocumentsProcessed++
	j.UpdatedAt = time.Now()
}

// AddSections records how many sections a document contributed.
func (j *Job) AddSections(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.SectionsAnalyzed += n
	j.UpdatedAt = time.Now()
}

// SetInputs attaches the uploaded documents.
func (j *Job) SetInputs(inputs []DocumentInput) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inputs = inputs
	j.Progress.TotalDocuments = len(inputs)
}

// Inputs returns the uploaded documents.
func (j *Job) Inputs() []DocumentInput {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inputs
}

// SetResult stores the finished analysis and drops the raw input bytes.
func (j *Job) SetResult(a *report.Analysis) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = a
	j.inputs = nil
	j.UpdatedAt = time.Now()
}

// Result returns the analysis, or nil while the job is in flight.
func (j *Job) Result() *report.Analysis {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string    `json:"job_id"`
	Persona     string    `json:"persona"`
	JobToBeDone string    `json:"job_to_be_done"`
	Status      JobStatus `json:"status"`
	Phase       string    `json:"phase"`
	Progress    Progress  `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Persona:     j.Persona,
		JobToBeDone: j.JobToBeDone,
		Status:      j.Status,
		Phase:       j.Phase,
		Progress: Progress{
			TotalDocuments:     j.Progress.TotalDocuments,
			DocumentsProcessed: j.Progress.DocumentsProcessed,
			SectionsAnalyzed:   j.Progress.SectionsAnalyzed,
			Errors:             errs,
		},
	}
}
