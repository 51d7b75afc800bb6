// Package core runs the batch pipeline: decode the uploaded CSV, build
// the canonical table through the field plan, encode it, deliver it to
// the configured destinations and retain a local copy for download.
package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lmtech-pe/ofertas-loader/internal/config"
	"github.com/lmtech-pe/ofertas-loader/internal/export"
	"github.com/lmtech-pe/ofertas-loader/internal/logging"
	"github.com/lmtech-pe/ofertas-loader/internal/schema"
	"github.com/lmtech-pe/ofertas-loader/internal/sink"
)

// Analytics is the optional supplemental row destination.
type Analytics interface {
	Insert(ctx context.Context, t *schema.Table) error
}

// Service orchestrates one upload end to end. All processing is
// synchronous within the request; re-running an upload restarts the
// whole pipeline from the raw bytes.
type Service struct {
	cfg       *config.Config
	store     sink.Sink
	analytics Analytics // nil when no Postgres destination is configured
	format    export.Format
	downloads *downloadStore

	// now is the clock source; swapped out in tests.
	now func() time.Time
}

// NewService builds the pipeline service. analytics may be nil.
func NewService(cfg *config.Config, store sink.Sink, analytics Analytics) (*Service, error) {
	format, err := export.NormalizeFormat(cfg.Sink.Format)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:       cfg,
		store:     store,
		analytics: analytics,
		format:    format,
		downloads: newDownloadStore(cfg.Upload.DownloadRetention),
		now:       time.Now,
	}, nil
}

// Result is what one processed upload reports back to the operator.
type Result struct {
	ObjectKey    string   `json:"object_key"`
	Rows         int      `json:"rows"`
	Warnings     []string `json:"warnings,omitempty"`
	Uploaded     bool     `json:"uploaded"`
	SinkError    string   `json:"sink_error,omitempty"`
	DownloadID   string   `json:"download_id"`
	DownloadName string   `json:"download_name"`
}

// Process runs the full pipeline for one uploaded file. Destination
// failures do not fail the call: they are reported in the result and the
// local download remains available. Only decode and canonical-assembly
// failures return an error.
func (s *Service) Process(ctx context.Context, filename string, r io.Reader) (*Result, error) {
	now := s.now()
	log := logging.FromContext(ctx).With("file", filename)

	raw, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}
	log.Info("batch decoded", "rows", len(raw.Rows), "columns", len(raw.Header))

	plan := BuildPlan(raw)
	for _, w := range plan.Warnings() {
		log.Warn(w)
	}

	table, err := plan.Transform(raw, now)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Rows:     len(table.Rows),
		Warnings: plan.Warnings(),
	}

	naToken := s.cfg.Export.Token()
	key := sink.ObjectKey(s.cfg.Sink.Prefix, filename, string(s.format), now)
	result.ObjectKey = key

	if body, err := export.Encode(table, s.format, naToken); err != nil {
		result.SinkError = fmt.Sprintf("encode %s: %v", s.format, err)
		log.Error("sink export failed", "error", err)
	} else if err := s.store.Put(ctx, key, body, s.format.ContentType()); err != nil {
		result.SinkError = err.Error()
		log.Error("sink delivery failed", "key", key, "error", err)
	} else {
		result.Uploaded = true
		log.Info("batch delivered", "key", key, "bytes", len(body))
	}

	if s.analytics != nil {
		if err := s.analytics.Insert(ctx, table); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("analytics table insert failed: %v", err))
			log.Error("analytics insert failed", "error", err)
		}
	}

	// The local copy is always CSV and always produced, whatever the
	// sink outcome.
	localName := sink.DownloadName(filename, now)
	local, err := export.EncodeCSV(table, naToken)
	if err != nil {
		return nil, fmt.Errorf("encode local copy: %w", err)
	}
	result.DownloadID = s.downloads.Put(Download{
		Name:        localName,
		ContentType: export.FormatCSV.ContentType(),
		Data:        local,
	}, now)
	result.DownloadName = localName

	return result, nil
}

// Download retrieves a retained local copy by ID.
func (s *Service) Download(id string) (Download, error) {
	return s.downloads.Get(id, s.now())
}
