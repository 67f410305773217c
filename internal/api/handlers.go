package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seuhd/campus-coffee/internal/model"
)

// maxBodyBytes caps request bodies on create and update.
const maxBodyBytes = 1 << 20

type handler struct {
	svc PosService
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if all == nil {
		all = []model.Pos{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePos(w, r)
	if !ok {
		return
	}
	if p.ID != nil {
		badRequest(w, "id must not be set when creating a pos")
		return
	}
	saved, err := h.svc.Upsert(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, ok := decodePos(w, r)
	if !ok {
		return
	}
	if p.ID == nil || *p.ID != id {
		badRequest(w, "pos id in body does not match path")
		return
	}
	saved, err := h.svc.Upsert(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) importOsm(w http.ResponseWriter, r *http.Request) {
	nodeID, ok := pathID(w, r, "nodeId")
	if !ok {
		return
	}
	saved, err := h.svc.ImportFromOsmNode(r.Context(), nodeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid "+param+": "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}

// decodePos reads and validates a POS body. Timestamps are owned by the
// store and ignored on input.
func decodePos(w http.ResponseWriter, r *http.Request) (model.Pos, bool) {
	var p model.Pos
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		badRequest(w, "invalid request body")
		return p, false
	}
	if err := p.Validate(); err != nil {
		badRequest(w, err.Error())
		return p, false
	}
	p.CreatedAt, p.UpdatedAt = time.Time{}, time.Time{}
	return p, true
}
