// Package stub is a local development backend for the branding client. It
// implements just enough of the REST contract to run brandctl and the
// integration tests against; it is not the production asset service.
package stub

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"brandkit/internal/branding"
	"brandkit/internal/utils"
)

// maxLogoBytes caps logo uploads the way the real backend would.
const maxLogoBytes = 2 << 20

// logoFilePath is where uploaded logo bytes are served; stored logo assets
// get their url rewritten to it.
const logoFilePath = "/assets/logo/file"

// Server holds the stub's state. The operator token is kept only as a bcrypt
// hash; presented bearer tokens are compared against it.
type Server struct {
	store     *Store
	tokenHash []byte
	log       *utils.Logger
}

// NewServer wires a stub server around a store and the operator token.
func NewServer(store *Store, operatorToken string, log *utils.Logger) (*Server, error) {
	operatorToken = strings.TrimSpace(operatorToken)
	if operatorToken == "" {
		return nil, errors.New("stub: missing operator token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(operatorToken), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = utils.NewWriterLogger(os.Stderr)
	}
	return &Server{store: store, tokenHash: hash, log: log}, nil
}

// Router builds the REST surface.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/assets", s.handleList).Methods("GET")
	r.HandleFunc("/assets", s.handleCreate).Methods("POST")
	r.HandleFunc(logoFilePath, s.handleLogoFile).Methods("GET")
	r.HandleFunc("/assets/{type}", s.handleGet).Methods("GET")
	r.HandleFunc("/assets/{type}", s.handleUpdate).Methods("PUT")
	r.HandleFunc("/assets/{type}", s.handleDelete).Methods("DELETE")
	return r
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"assets": s.store.List()})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	t, err := branding.ParseAssetType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	asset, _, ok := s.store.Get(t)
	if !ok {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "invalid or missing bearer token", http.StatusUnauthorized)
		return
	}
	asset, file, ok := s.readPayload(w, r, "")
	if !ok {
		return
	}
	saved, err := s.store.Put(asset, file)
	if err != nil {
		s.log.Error(fmt.Sprintf("store %s: %v", asset.AssetType, err))
		http.Error(w, "failed to store asset", http.StatusInternalServerError)
		return
	}
	s.log.Info(fmt.Sprintf("created %s asset", saved.AssetType))
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "invalid or missing bearer token", http.StatusUnauthorized)
		return
	}
	want, err := branding.ParseAssetType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	asset, file, ok := s.readPayload(w, r, want)
	if !ok {
		return
	}
	saved, err := s.store.Put(asset, file)
	if err != nil {
		s.log.Error(fmt.Sprintf("store %s: %v", asset.AssetType, err))
		http.Error(w, "failed to store asset", http.StatusInternalServerError)
		return
	}
	s.log.Info(fmt.Sprintf("updated %s asset", saved.AssetType))
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "invalid or missing bearer token", http.StatusUnauthorized)
		return
	}
	t, err := branding.ParseAssetType(mux.Vars(r)["type"])
	if err != nil {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	if !s.store.Delete(t) {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	s.log.Info(fmt.Sprintf("deleted %s asset", t))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLogoFile(w http.ResponseWriter, _ *http.Request) {
	asset, file, ok := s.store.Get(branding.TypeLogo)
	if !ok || file == nil {
		http.Error(w, "no logo uploaded", http.StatusNotFound)
		return
	}
	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	w.Write(file)
}

// readPayload decodes the multipart write body. On failure it has already
// written the error response and returns ok=false. wantType, when set, must
// match the form's AssetType field (PUT path vs body mismatch is a 400).
func (s *Server) readPayload(w http.ResponseWriter, r *http.Request, wantType branding.AssetType) (branding.Asset, []byte, bool) {
	if err := r.ParseMultipartForm(maxLogoBytes + 4096); err != nil {
		http.Error(w, "malformed multipart body", http.StatusBadRequest)
		return branding.Asset{}, nil, false
	}
	t, err := branding.ParseAssetType(r.FormValue("AssetType"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return branding.Asset{}, nil, false
	}
	if wantType != "" && t != wantType {
		http.Error(w, fmt.Sprintf("asset type mismatch: path says %s, body says %s", wantType, t), http.StatusBadRequest)
		return branding.Asset{}, nil, false
	}

	switch t {
	case branding.TypeLogo:
		f, fh, err := r.FormFile("File")
		if err != nil {
			http.Error(w, "missing File part for logo upload", http.StatusBadRequest)
			return branding.Asset{}, nil, false
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxLogoBytes+1))
		if err != nil {
			http.Error(w, "failed to read file", http.StatusBadRequest)
			return branding.Asset{}, nil, false
		}
		if len(data) > maxLogoBytes {
			http.Error(w, fmt.Sprintf("logo exceeds %d bytes", maxLogoBytes), http.StatusRequestEntityTooLarge)
			return branding.Asset{}, nil, false
		}
		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			http.Error(w, fmt.Sprintf("unsupported logo content type %q", contentType), http.StatusUnsupportedMediaType)
			return branding.Asset{}, nil, false
		}
		return branding.Asset{
			AssetType:   t,
			ContentType: contentType,
			FileName:    fh.Filename,
			URL:         logoFilePath,
		}, data, true

	case branding.TypeFooter:
		if r.MultipartForm == nil || len(r.MultipartForm.Value["Text"]) == 0 {
			http.Error(w, "missing Text field for footer", http.StatusBadRequest)
			return branding.Asset{}, nil, false
		}
		return branding.Asset{
			AssetType: t,
			Text:      r.FormValue("Text"),
		}, nil, true
	}
	http.Error(w, "unsupported asset type", http.StatusBadRequest)
	return branding.Asset{}, nil, false
}

func (s *Server) authorized(r *http.Request) bool {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, prefix) {
		return false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, prefix))
	if token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)) == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
