package http

import (
	"net/http"

	"github.com/fleshka4/bonding-curve/internal/transport/http/validate"
)

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.EstimateRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.Estimate(ctx, *req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleCost(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.CostRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.Cost(ctx, *req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, out)
}
