package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_manager/internal/app"
	"hotel_manager/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// result confirms a write.
type result struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/dashboard", h.dashboard)

		r.Get("/reservations", h.listReservations)
		r.Post("/reservations", h.createReservation)
		r.Put("/reservations/{id}", h.updateReservation)
		r.Delete("/reservations/{id}", h.deleteReservation)

		r.Get("/clients", h.listClients)
		r.Post("/clients", h.createClient)
		r.Delete("/clients/{id}", h.deleteClient)

		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/available", h.availableRooms)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemKind(w, status, title, detail, "")
}

func writeProblemKind(w http.ResponseWriter, status int, title, detail, kind string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Kind: kind}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps an app/store error to its problem response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindValidation:
		writeProblemKind(w, http.StatusBadRequest, "Invalid Request", domain.Message(err), kind)
	case domain.KindNotFound:
		writeProblemKind(w, http.StatusNotFound, "Not Found", domain.Message(err), kind)
	case domain.KindConstraint:
		writeProblemKind(w, http.StatusConflict, "Conflict", domain.Message(err), kind)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("store operation failed")
		writeProblemKind(w, http.StatusInternalServerError, "Internal Server Error", "the store could not complete the operation", kind)
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCacheable writes v as JSON with a weak ETag, answering 304 when the
// client already has it.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeResult(w http.ResponseWriter, status int, res result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("write JSON result failed")
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return false
	}
	return true
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// ---- dashboard ----

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	st, err := h.Q.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, st)
}

// ---- reservations ----

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListReservations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, orEmpty(out))
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var in domain.NewReservation
	if !decode(w, r, &in) {
		return
	}
	id, err := h.C.CreateReservation(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/reservations/%d", id))
	writeResult(w, http.StatusCreated, result{Message: fmt.Sprintf("reservation #%d confirmed", id), ID: id})
}

// updateReservation takes the whole edit in the body; no edit state is kept
// between requests.
func (h *Handlers) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in struct {
		Start  string `json:"start"`
		End    string `json:"end"`
		RoomID int64  `json:"room_id"`
	}
	if !decode(w, r, &in) {
		return
	}
	ch := domain.ReservationChange{ID: id, Start: in.Start, End: in.End, RoomID: in.RoomID}
	if err := h.C.UpdateReservation(r.Context(), ch); err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result{Message: fmt.Sprintf("reservation #%d updated", id), ID: id})
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteReservation(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result{Message: fmt.Sprintf("reservation #%d deleted", id), ID: id})
}

// ---- clients ----

func (h *Handlers) listClients(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, orEmpty(out))
}

func (h *Handlers) createClient(w http.ResponseWriter, r *http.Request) {
	var in domain.NewClient
	if !decode(w, r, &in) {
		return
	}
	id, err := h.C.CreateClient(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/clients/%d", id))
	writeResult(w, http.StatusCreated, result{Message: fmt.Sprintf("client %s added", in.Name), ID: id})
}

func (h *Handlers) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.C.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeResult(w, http.StatusOK, result{Message: fmt.Sprintf("client %d deleted", id), ID: id})
}

// ---- rooms ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListRooms(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, orEmpty(out))
}

func (h *Handlers) availableRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.Q.FindAvailableRooms(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCacheable(w, r, orEmpty(out))
}
