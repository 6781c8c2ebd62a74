package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HerbHall/olympushub/pkg/models"
)

func TestProblemHelpers(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		status   int
		wantType string
	}{
		{"not found", func(w http.ResponseWriter) { NotFound(w, "no such rule", "/x") }, http.StatusNotFound, models.ProblemTypeNotFound},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "bad", "/x") }, http.StatusBadRequest, models.ProblemTypeBadRequest},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "boom", "/x") }, http.StatusInternalServerError, models.ProblemTypeInternal},
		{"rate limited", func(w http.ResponseWriter) { RateLimited(w, "slow down", "/x") }, http.StatusTooManyRequests, models.ProblemTypeRateLimited},
		{"unavailable", func(w http.ResponseWriter) { Unavailable(w, "no store", "/x") }, http.StatusServiceUnavailable, models.ProblemTypeUnavailable},
		{"derived", func(w http.ResponseWriter) { WriteProblem(w, models.Problem{Status: http.StatusConflict}) }, http.StatusConflict, models.ProblemTypeConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("content-type = %q", ct)
			}
			var p models.Problem
			if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if p.Type != tt.wantType {
				t.Errorf("type = %q, want %q", p.Type, tt.wantType)
			}
			if p.Status != tt.status || p.Title == "" {
				t.Errorf("problem = %+v", p)
			}
		})
	}
}
