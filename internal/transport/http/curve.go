package http

import (
	"net/http"

	"github.com/fleshka4/bonding-curve/internal/transport/http/validate"
)

func (s *Server) handleCreateCurve(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.CreateCurveRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.CreateCurve(ctx, *req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, out)
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	mint, code, err := validate.MintParam(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.Curve(ctx, mint)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleCurves(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.Curves(ctx)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, out)
}
