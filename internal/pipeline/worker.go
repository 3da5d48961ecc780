package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/relevance"
	"github.com/dgallion1/docsight/internal/report"
	"github.com/dgallion1/docsight/internal/section"
)

// Worker processes analysis jobs: it extracts, classifies, assembles,
// and scores each document independently, then ranks the combined
// section set.
type Worker struct {
	catalog    *persona.Catalog
	log        *slog.Logger
	stats      *Stats
	outlineCfg outline.Config
	sectionCfg section.Config

	topSections        int
	maxConcurrentParse int
	pdfFallback        bool
}

func NewWorker(catalog *persona.Catalog, log *slog.Logger, stats *Stats, cfg config.Config) *Worker {
	if cfg.MaxConcurrentParse <= 0 {
		cfg.MaxConcurrentParse = 1
	}
	return &Worker{
		catalog:    catalog,
		log:        log,
		stats:      stats,
		outlineCfg: outline.DefaultConfig(),
		sectionCfg: section.Config{
			SentencesPerChunk: cfg.SentencesPerChunk,
			MaxSubsections:    cfg.MaxSubsections,
		},
		topSections:        cfg.TopSections,
		maxConcurrentParse: cfg.MaxConcurrentParse,
		pdfFallback:        cfg.PDFFallbackPdftotext,
	}
}

// docOutcome is the per-document result collected before ranking.
type docOutcome struct {
	name     string
	sections []relevance.ScoredSection
	err      error
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	resolver := persona.NewResolver(w.catalog)
	profile := resolver.Resolve(job.Persona, job.JobToBeDone)
	scorer := relevance.NewScorer(profile)
	log.Info("profile resolved",
		"persona_category", profile.PersonaCategory,
		"job_category", profile.JobCategory,
	)

	inputs := job.Inputs()

	// Phase 1: per-document extraction, classification, assembly, and
	// scoring with bounded concurrency. Documents share only the
	// read-only profile, so they are independent.
	job.SetStatus(StatusParsing, "parsing")
	results := make(chan docOutcome, len(inputs))
	sem := make(chan struct{}, w.maxConcurrentParse)

	for _, in := range inputs {
		sem <- struct{}{}
		go func(in DocumentInput) {
			defer func() { <-sem }()
			select {
			case <-ctx.Done():
				results <- docOutcome{name: in.Name, err: ctx.Err()}
				return
			default:
			}
			start := time.Now()
			sections, err := w.analyzeDocument(in, scorer)
			w.stats.Record(StageAnalyze, time.Since(start).Milliseconds())
			results <- docOutcome{name: in.Name, sections: sections, err: err}
		}(in)
	}

	// Collect. A failed document is recorded and the batch continues.
	var all []relevance.ScoredSection
	var documents []string
	hadErrors := false
	for range inputs {
		r := <-results
		job.IncrDocumentsProcessed()
		if r.err != nil {
			log.Error("document failed", "document", r.name, "error", r.err)
			job.AddError(fmt.Sprintf("%s: %s", r.name, r.err))
			hadErrors = true
			continue
		}
		documents = append(documents, r.name)
		job.AddSections(len(r.sections))
		all = append(all, r.sections...)
	}

	if len(documents) == 0 && hadErrors {
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: global ranking requires the full cross-document set.
	job.SetStatus(StatusRanking, "ranking")
	ranked := relevance.Rank(all)

	result := report.BuildAnalysis(job.Persona, job.JobToBeDone, documents, ranked, w.topSections, time.Now())
	job.SetResult(&result)
	log.Info("analysis complete",
		"documents", len(documents),
		"sections", len(ranked),
	)

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// analyzeDocument runs one document through extraction, outline
// classification, section assembly, and scoring.
func (w *Worker) analyzeDocument(in DocumentInput, scorer *relevance.Scorer) ([]relevance.ScoredSection, error) {
	doc, err := w.extract(in)
	if err != nil {
		return nil, err
	}

	title := outline.DetectTitle(doc.Fragments, w.outlineCfg)
	headings := outline.Classify(doc.Fragments, w.outlineCfg)
	sections := section.Assemble(doc, title, headings)

	scored := make([]relevance.ScoredSection, 0, len(sections))
	for _, sec := range sections {
		ss := relevance.ScoredSection{
			Section: sec,
			Score:   scorer.Score(sec.Body),
		}
		for i, chunk := range section.Subsections(sec.Body, w.sectionCfg) {
			ss.Subsections = append(ss.Subsections, relevance.ScoredSubsection{
				Text:  chunk,
				Index: i,
				Score: scorer.Score(chunk),
			})
		}
		scored = append(scored, ss)
	}
	return scored, nil
}

// Outline extracts a single document's title and heading outline. Used
// by the synchronous outline endpoint.
func (w *Worker) Outline(in DocumentInput) (report.Outline, error) {
	start := time.Now()
	doc, err := w.extract(in)
	if err != nil {
		return report.Outline{}, err
	}
	title := outline.DetectTitle(doc.Fragments, w.outlineCfg)
	headings := outline.Classify(doc.Fragments, w.outlineCfg)
	w.stats.Record(StageOutline, time.Since(start).Milliseconds())
	return report.BuildOutline(title, headings), nil
}

func (w *Worker) extract(in DocumentInput) (*fragment.Document, error) {
	src, err := fragment.ForFile(in.Name)
	if err != nil {
		return nil, err
	}
	if pdfSrc, ok := src.(*fragment.PDFSource); ok {
		pdfSrc.FallbackPdftotext = w.pdfFallback
	}
	doc, err := src.Extract(bytes.NewReader(in.Data), in.Name)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return doc, nil
}
