package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrchestrator(t *testing.T, queueSize int) *Orchestrator {
	t.Helper()
	catalog, err := persona.LoadCatalog("")
	require.NoError(t, err)

	cfg := config.Config{
		WorkerCount:        1,
		MaxQueueSize:       queueSize,
		MaxConcurrentParse: 1,
		TopSections:        10,
		SentencesPerChunk:  2,
		MaxSubsections:     3,
		JobTTL:             time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, catalog, log)
}

func TestOrchestratorProcessesSubmittedJob(t *testing.T) {
	o := testOrchestrator(t, 10)
	o.Start(context.Background())
	defer o.Stop()

	job := &Job{
		ID:          "e2e",
		Persona:     "Analyst",
		JobToBeDone: "Review financial performance",
		Status:      StatusQueued,
	}
	job.SetInputs([]DocumentInput{{Name: "report.md", Data: []byte(sampleReport)}})

	require.NoError(t, o.Submit(job))
	require.NotNil(t, o.GetJob("e2e"))

	deadline := time.After(5 * time.Second)
	for job.Snapshot().Status != StatusCompleted {
		select {
		case <-deadline:
			t.Fatalf("job did not finish, status=%s", job.Snapshot().Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
	assert.NotNil(t, job.Result())
}

func TestOrchestratorRejectsSubmitAfterStop(t *testing.T) {
	o := testOrchestrator(t, 10)
	o.Start(context.Background())
	o.Stop()

	job := &Job{ID: "late"}
	err := o.Submit(job)
	assert.Error(t, err)
	assert.Equal(t, StatusFailed, job.Snapshot().Status)

	// Stop is idempotent.
	o.Stop()
}

func TestOrchestratorRejectsWhenQueueFull(t *testing.T) {
	// No workers started, so the queue never drains.
	o := testOrchestrator(t, 1)

	first := &Job{ID: "first"}
	second := &Job{ID: "second"}
	require.NoError(t, o.Submit(first))

	err := o.Submit(second)
	assert.Error(t, err)
	assert.Equal(t, StatusFailed, second.Snapshot().Status)
	// The rejected job is still visible for status polling.
	assert.NotNil(t, o.GetJob("second"))
	assert.Equal(t, 1, o.QueueDepth())
}
