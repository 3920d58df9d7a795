package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type watchlistInput struct {
	Symbol string  `json:"symbol"`
	Notes  *string `json:"notes"`
}

// ListHoldings handles the ListHoldings RPC
func (s *Server) ListHoldings(ctx context.Context, req request) (interface{}, error) {
	return listCall("holdings", s.Services.Investment.ListHoldings)(ctx, req)
}

// GetPortfolio handles the GetPortfolio RPC
func (s *Server) GetPortfolio(ctx context.Context, req request) (interface{}, error) {
	return listCall("portfolio", s.Services.Investment.Portfolio)(ctx, req)
}

// AddHolding handles the AddHolding RPC
func (s *Server) AddHolding(ctx context.Context, req request) (interface{}, error) {
	return inputCall("holding", s.Services.Investment.AddHolding)(ctx, req)
}

// UpdateHolding handles the UpdateHolding RPC
func (s *Server) UpdateHolding(ctx context.Context, req request) (interface{}, error) {
	return updateCall("holding", s.Services.Investment.UpdateHolding)(ctx, req)
}

// DeleteHolding handles the DeleteHolding RPC
func (s *Server) DeleteHolding(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Investment.DeleteHolding)(ctx, req)
}

// ListWatchlist handles the ListWatchlist RPC
func (s *Server) ListWatchlist(ctx context.Context, req request) (interface{}, error) {
	return listCall("items", s.Services.Investment.ListWatchlist)(ctx, req)
}

// AddToWatchlist handles the AddToWatchlist RPC
func (s *Server) AddToWatchlist(ctx context.Context, req request) (interface{}, error) {
	var input watchlistInput
	if err := req.bind(&input); err != nil {
		return nil, err
	}
	if input.Symbol == "" {
		return nil, status.Error(codes.InvalidArgument, "symbol is required")
	}

	item, err := s.Services.Investment.AddToWatchlist(ctx, input.Symbol, input.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"item": item}, nil
}

// UpdateWatchlistNotes handles the UpdateWatchlistNotes RPC
func (s *Server) UpdateWatchlistNotes(ctx context.Context, req request) (interface{}, error) {
	id, err := req.id("id")
	if err != nil {
		return nil, err
	}
	var input watchlistInput
	if err := req.bind(&input); err != nil {
		return nil, err
	}

	item, err := s.Services.Investment.UpdateWatchlistNotes(ctx, id, input.Notes)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"item": item}, nil
}

// RemoveFromWatchlist handles the RemoveFromWatchlist RPC
func (s *Server) RemoveFromWatchlist(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Investment.RemoveFromWatchlist)(ctx, req)
}
