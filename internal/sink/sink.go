// Package sink delivers encoded batches to their destinations: the
// object store that feeds the analytics platform, and an optional
// Postgres table for deployments that query the cleaned offers
// directly.
package sink

import (
	"context"
	"path/filepath"
	"strings"
	"time"
)

// Sink persists an encoded batch under a key in a destination store.
type Sink interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// defaultStem is used when the upload carries no usable filename.
const defaultStem = "datos_ofertas"

// processedSuffix marks cleaned batches in the destination store.
const processedSuffix = "procesado"

// ObjectKey builds the destination key for a processed batch:
//
//	{prefix}{stem}_procesado_{YYYYMMDD_HHMMSS}.{format}
//
// A non-empty prefix is guaranteed to end with a slash.
func ObjectKey(prefix, filename, format string, now time.Time) string {
	prefix = strings.TrimSpace(prefix)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if stem == "" || stem == "." {
		stem = defaultStem
	}

	return prefix + stem + "_" + processedSuffix + "_" + now.Format("20060102_150405") + "." + format
}

// DownloadName builds the filename offered for the local copy of a
// processed batch.
func DownloadName(filename string, now time.Time) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if stem == "" || stem == "." {
		stem = defaultStem
	}
	return stem + "_" + processedSuffix + "_" + now.Format("20060102_150405") + "_descarga_local.csv"
}
