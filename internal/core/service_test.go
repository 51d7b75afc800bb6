package core

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lmtech-pe/ofertas-loader/internal/config"
	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

type fakeSink struct {
	key         string
	body        []byte
	contentType string
	err         error
}

func (f *fakeSink) Put(_ context.Context, key string, body []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}
	f.key = key
	f.body = body
	f.contentType = contentType
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{DownloadRetention: time.Hour},
		Sink: config.SinkConfig{
			Bucket: "test-bucket",
			Prefix: "ofertas_limpias/",
			Format: "csv",
		},
		Export: config.ExportConfig{NAToken: `\N`},
	}
}

func newTestService(t *testing.T, store *fakeSink) *Service {
	t.Helper()
	svc, err := NewService(testConfig(), store, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	svc.now = func() time.Time { return batchTime }
	return svc
}

const sampleUpload = "ID_Oferta;Título;Fecha_Publicacion\n" +
	"of-1;desarrollador;hoy\n" +
	"of-2;analista;hace 3 días\n"

func TestProcess(t *testing.T) {
	store := &fakeSink{}
	svc := newTestService(t, store)

	result, err := svc.Process(context.Background(), "ofertas.csv", strings.NewReader(sampleUpload))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if !result.Uploaded || result.SinkError != "" {
		t.Errorf("expected clean delivery, got uploaded=%v sinkError=%q", result.Uploaded, result.SinkError)
	}
	if result.Rows != 2 {
		t.Errorf("Rows = %d, want 2", result.Rows)
	}
	if want := "ofertas_limpias/ofertas_procesado_20240610_120000.csv"; result.ObjectKey != want {
		t.Errorf("ObjectKey = %q, want %q", result.ObjectKey, want)
	}
	if store.key != result.ObjectKey {
		t.Errorf("sink received key %q, want %q", store.key, result.ObjectKey)
	}
	if !strings.HasPrefix(store.contentType, "text/csv") {
		t.Errorf("content type = %q, want text/csv", store.contentType)
	}
	if !bytes.Contains(store.body, []byte("2024-06-07")) {
		t.Error("sink body should contain the resolved relative date")
	}

	d, err := svc.Download(result.DownloadID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if d.Name != result.DownloadName {
		t.Errorf("download name = %q, want %q", d.Name, result.DownloadName)
	}
	if !bytes.Equal(d.Data, store.body) {
		t.Error("local CSV copy should match the delivered CSV body")
	}
}

// A destination failure is reported, not fatal: the operator still gets
// the local copy.
func TestProcess_SinkFailure(t *testing.T) {
	store := &fakeSink{err: errors.New("bucket unreachable")}
	svc := newTestService(t, store)

	result, err := svc.Process(context.Background(), "ofertas.csv", strings.NewReader(sampleUpload))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.Uploaded {
		t.Error("Uploaded should be false when the sink rejects the object")
	}
	if !strings.Contains(result.SinkError, "bucket unreachable") {
		t.Errorf("SinkError = %q, want the sink failure surfaced", result.SinkError)
	}
	if _, err := svc.Download(result.DownloadID); err != nil {
		t.Errorf("local copy should survive a sink failure: %v", err)
	}
}

func TestProcess_EmptyFile(t *testing.T) {
	svc := newTestService(t, &fakeSink{})
	_, err := svc.Process(context.Background(), "vacio.csv", strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Process(empty) err = %v, want ErrEmptyFile", err)
	}
}

type analyticsFunc func(ctx context.Context, t *schema.Table) error

func (f analyticsFunc) Insert(ctx context.Context, t *schema.Table) error { return f(ctx, t) }

func TestProcess_AnalyticsFailureIsWarning(t *testing.T) {
	store := &fakeSink{}
	svc, err := NewService(testConfig(), store, analyticsFunc(func(context.Context, *schema.Table) error {
		return errors.New("connection refused")
	}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	svc.now = func() time.Time { return batchTime }

	result, err := svc.Process(context.Background(), "ofertas.csv", strings.NewReader(sampleUpload))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !result.Uploaded {
		t.Error("sink delivery should succeed independently of analytics")
	}
	var found bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "connection refused") {
			found = true
		}
	}
	if !found {
		t.Errorf("analytics failure should appear in warnings, got %v", result.Warnings)
	}
}
