package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/moottier/ccrev/batch"
	"github.com/moottier/ccrev/chart"
	"github.com/moottier/ccrev/ingest"
	"github.com/moottier/ccrev/report"
	"github.com/moottier/ccrev/ruleengine"
	"github.com/moottier/ccrev/stats"
	"github.com/moottier/ccrev/store"
)

// Server wires ingest, the rule engine, storage, and reporting behind a
// small HTTP surface.
type Server struct {
	mux     *http.ServeMux
	store   *store.Store
	catalog []ruleengine.Rule
}

// New builds a Server backed by st, analyzing every uploaded batch
// against catalog.
func New(st *store.Store, catalog []ruleengine.Rule) *Server {
	s := &Server{mux: http.NewServeMux(), store: st, catalog: catalog}

	s.mux.HandleFunc("POST /batches", s.handleUpload)
	s.mux.HandleFunc("GET /batches", s.handleList)
	s.mux.HandleFunc("GET /batches/{id}/report", s.handleReport)

	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrMissingFile)

		return
	}
	defer file.Close()

	path, cleanup, err := spool(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}
	defer cleanup()

	series, index, err := ingest.ReadSeries(ingest.CSVSource{Path: path, HasHeader: true, IndexColumn: -1})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)

		return
	}

	mean, stdev, err := stats.Compute(series)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)

		return
	}

	labels, err := ruleengine.Analyze(series, mean, stdev, s.catalog)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)

		return
	}

	b := batch.Batch{
		Name:        header.Filename,
		Series:      series,
		Index:       index,
		Mean:        mean,
		Stdev:       stdev,
		Labels:      labels,
		Signals:     batch.SignalsFromLabels(series, mean, labels),
		CatalogName: "default",
	}

	id, err := s.store.Save(r.Context(), b)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	sb, err := s.store.Load(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)

		return
	}

	png, err := chart.Render(sb.Batch, s.catalog)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	html, err := report.Build([]report.Section{{
		Batch:     sb.Batch,
		ChartPNG:  png,
		Narrative: report.Narrate(sb.Batch),
	}})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// spool copies an uploaded file to a temp path ingest.ReadSeries can
// open, returning a cleanup func to remove it.
func spool(src io.Reader, name string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "ccrev-upload-*"+filepath.Ext(name))
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(f.Name())

		return "", nil, err
	}

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprint(err)})
}
