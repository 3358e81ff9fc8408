// ABOUTME: HTTP JSON API over the ledger, stats engine and type registry.
// ABOUTME: Thin presentation layer; all validation lives in the core packages.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/chart"
	"github.com/varzesh/fitlog/internal/ledger"
	"github.com/varzesh/fitlog/internal/models"
)

// Server serves the fitness log over HTTP.
type Server struct {
	ledger *ledger.Ledger
}

// New returns a server over the given ledger.
func New(l *ledger.Ledger) *Server {
	return &Server{ledger: l}
}

// Handler builds the full middleware-wrapped route tree.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/exercises", s.listExercises).Methods("GET")
	r.HandleFunc("/api/exercises", s.addExercise).Methods("POST")
	r.HandleFunc("/api/exercises/{date}/{name}", s.updateExercise).Methods("PUT")
	r.HandleFunc("/api/exercises/{date}/{name}", s.removeExercise).Methods("DELETE")
	r.HandleFunc("/api/stats", s.getStats).Methods("GET")
	r.HandleFunc("/api/goals", s.setGoals).Methods("PUT")
	r.HandleFunc("/api/types", s.listTypes).Methods("GET")
	r.HandleFunc("/api/types", s.addType).Methods("POST")
	r.HandleFunc("/api/chart/week", s.weeklyChart).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(loggingMiddleware(r))
}

// ListenAndServe starts the server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("fitlog API listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		log.Printf("REQ: %s %s - Body: %s", r.Method, r.URL.Path, string(body))

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(wrapper, r)

		log.Printf("RES: %d - %s %s - %v", wrapper.statusCode, r.Method, r.URL.Path, time.Since(start))
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the core error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case models.IsValidation(err), errors.Is(err, caldate.ErrInvalidDateKey), errors.Is(err, models.ErrUnknownType):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateName), errors.Is(err, models.ErrDuplicateType):
		status = http.StatusConflict
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) dateOrToday(r *http.Request) string {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.ledger.Calendar().Today()
	}
	return date
}

func (s *Server) listExercises(w http.ResponseWriter, r *http.Request) {
	date := s.dateOrToday(r)
	records, err := s.ledger.Get(date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": date, "exercises": records})
}

type addExerciseRequest struct {
	Date           string `json:"date"`
	ExerciseName   string `json:"exerciseName"`
	ExerciseType   string `json:"exerciseType"`
	Duration       int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

func (s *Server) addExercise(w http.ResponseWriter, r *http.Request) {
	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.Date == "" {
		req.Date = s.ledger.Calendar().Today()
	}
	rec := models.NewExerciseRecord(req.ExerciseName, req.ExerciseType, req.Duration, req.CaloriesBurned, req.Date)
	if err := s.ledger.Add(req.Date, rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var patch models.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := s.ledger.Update(vars["date"], vars["name"], &patch); err != nil {
		writeError(w, err)
		return
	}
	records, err := s.ledger.Get(vars["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": vars["date"], "exercises": records})
}

func (s *Server) removeExercise(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	removed, err := s.ledger.Remove(vars["date"], vars["name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Stats().Current())
}

type goalsRequest struct {
	DailyCalorieGoal  int `json:"dailyCalorieGoal"`
	DailyDurationGoal int `json:"dailyDurationGoal"`
}

func (s *Server) setGoals(w http.ResponseWriter, r *http.Request) {
	var req goalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := s.ledger.Stats().SetGoals(req.DailyCalorieGoal, req.DailyDurationGoal); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.ledger.Stats().Current())
}

func (s *Server) listTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ledger.Registry().List())
}

type addTypeRequest struct {
	Type string `json:"type"`
}

func (s *Server) addType(w http.ResponseWriter, r *http.Request) {
	var req addTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := s.ledger.Registry().Add(req.Type); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.ledger.Registry().List())
}

func (s *Server) weeklyChart(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
			return
		}
		offset = n
	}
	week, err := chart.Weekly(s.ledger, s.ledger.Calendar(), offset)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, week)
}
