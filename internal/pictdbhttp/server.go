// Package pictdbhttp implements the HTTP front end for pictDB: the
// /pictDB/{list,read,insert,delete} routes plus a static asset directory,
// each handler taking an explicit *pictdb.DB rather than reaching for a
// package-level global (spec.md §9 Design Notes).
package pictdbhttp

import (
	"fmt"
	"io"
	"net/http"

	"github.com/arceus-db/pictdb/internal/pictdb"
	"github.com/sirupsen/logrus"
)

// Server wires a single open *pictdb.DB into an http.Handler exposing the
// /pictDB/* routes alongside a static asset directory at "/".
type Server struct {
	db  *pictdb.DB
	log *logrus.Entry
	mux *http.ServeMux
}

// New builds a Server backed by db, serving staticDir (if non-empty) at "/".
func New(db *pictdb.DB, staticDir string, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{db: db, log: log, mux: http.NewServeMux()}
	if staticDir != "" {
		s.mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	s.mux.HandleFunc("/pictDB/list", s.handleList)
	s.mux.HandleFunc("/pictDB/read", s.handleRead)
	s.mux.HandleFunc("/pictDB/insert", s.handleInsert)
	s.mux.HandleFunc("/pictDB/delete", s.handleDelete)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := s.db.List(pictdb.ListJSON)
	if err != nil {
		s.writeError(w, "list", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, out)
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	pictID := r.URL.Query().Get("pict_id")
	if pictID == "" {
		s.writeError(w, "read", newErr(pictdb.KindNotEnoughArguments, "missing pict_id"))
		return
	}
	token := r.URL.Query().Get("res")
	if token == "" {
		token = "original"
	}
	res, err := pictdb.ParseResolution(token)
	if err != nil {
		s.writeError(w, "read", err)
		return
	}

	payload, err := s.db.Read(pictID, res)
	if err != nil {
		s.writeError(w, "read", err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(payload)

	s.log.WithFields(logrus.Fields{"pict_id": pictID, "res": res.String()}).Info("served read")
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "ERROR: method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.writeError(w, "insert", newErr(pictdb.KindInvalidArgument, err.Error()))
		return
	}
	pictID := r.FormValue("pict_id")
	if pictID == "" {
		pictID = r.FormValue("name")
	}
	if pictID == "" {
		s.writeError(w, "insert", newErr(pictdb.KindNotEnoughArguments, "missing pict_id"))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		file, _, err = r.FormFile("image")
	}
	if err != nil {
		s.writeError(w, "insert", newErr(pictdb.KindNotEnoughArguments, "missing image file field"))
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, "insert", newErr(pictdb.KindIO, err.Error()))
		return
	}

	if err := s.db.Insert(payload, pictID); err != nil {
		s.writeError(w, "insert", err)
		return
	}

	s.log.WithField("pict_id", pictID).Info("inserted via http")
	http.Redirect(w, r, "/index.html", http.StatusFound)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	pictID := r.URL.Query().Get("pict_id")
	if pictID == "" {
		s.writeError(w, "delete", newErr(pictdb.KindNotEnoughArguments, "missing pict_id"))
		return
	}

	if err := s.db.Delete(pictID); err != nil {
		s.writeError(w, "delete", err)
		return
	}

	s.log.WithField("pict_id", pictID).Info("deleted via http")
	http.Redirect(w, r, "/index.html", http.StatusFound)
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	s.log.WithField("op", op).Error(err)
	http.Error(w, fmt.Sprintf("ERROR: %s", err), http.StatusInternalServerError)
}

func newErr(kind pictdb.Kind, msg string) error {
	return fmt.Errorf("%s: %s", kind, msg)
}
