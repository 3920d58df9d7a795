package grpc

import (
	"context"
)

// GetDailyQuote handles the GetDailyQuote RPC
func (s *Server) GetDailyQuote(ctx context.Context, req request) (interface{}, error) {
	return listCall("quote", s.Services.Quotes.Today)(ctx, req)
}

// SetDailyQuote handles the SetDailyQuote RPC
func (s *Server) SetDailyQuote(ctx context.Context, req request) (interface{}, error) {
	return inputCall("quote", s.Services.Quotes.SetToday)(ctx, req)
}

// ListQuotes handles the ListQuotes RPC
func (s *Server) ListQuotes(ctx context.Context, req request) (interface{}, error) {
	return listCall("quotes", s.Services.Quotes.List)(ctx, req)
}

// GetExportStats handles the GetExportStats RPC
func (s *Server) GetExportStats(ctx context.Context, req request) (interface{}, error) {
	return listCall("stats", s.Services.Snapshot.Stats)(ctx, req)
}

// Export handles the Export RPC. The response is the full export document.
func (s *Server) Export(ctx context.Context, _ request) (interface{}, error) {
	snap, err := s.Services.Snapshot.Export(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return snap, nil
}
