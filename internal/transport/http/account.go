package http

import (
	"net/http"

	"github.com/fleshka4/bonding-curve/internal/ledger"
	"github.com/fleshka4/bonding-curve/internal/transport/http/dto"
	"github.com/fleshka4/bonding-curve/internal/transport/http/validate"
)

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.DepositRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	bal, err := s.svc.Deposit(ctx, *req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.BalanceResponse{
		Account: req.Account,
		Asset:   ledger.Native,
		Balance: bal,
	})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.BalanceRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	bal, err := s.svc.Balance(ctx, *req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, dto.BalanceResponse{
		Account: req.Account,
		Asset:   req.Asset,
		Balance: bal,
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.svc.Config(r.Context()))
}

func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	u, code, err := validate.ConfigUpdateValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.UpdateConfig(ctx, *u)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, out)
}
