package grpc

import (
	"context"
)

// ListJournalEntries handles the ListJournalEntries RPC
func (s *Server) ListJournalEntries(ctx context.Context, req request) (interface{}, error) {
	entries, err := s.Services.Journal.List(ctx, req.text("search"))
	if err != nil {
		return nil, mapError(err)
	}
	return H{"entries": entries}, nil
}

// GetJournalEntry handles the GetJournalEntry RPC
func (s *Server) GetJournalEntry(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "entry", s.Services.Journal.Get)(ctx, req)
}

// CreateJournalEntry handles the CreateJournalEntry RPC
func (s *Server) CreateJournalEntry(ctx context.Context, req request) (interface{}, error) {
	return inputCall("entry", s.Services.Journal.Create)(ctx, req)
}

// UpdateJournalEntry handles the UpdateJournalEntry RPC
func (s *Server) UpdateJournalEntry(ctx context.Context, req request) (interface{}, error) {
	return updateCall("entry", s.Services.Journal.Update)(ctx, req)
}

// DeleteJournalEntry handles the DeleteJournalEntry RPC
func (s *Server) DeleteJournalEntry(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Journal.Delete)(ctx, req)
}

// GetJournalStats handles the GetJournalStats RPC
func (s *Server) GetJournalStats(ctx context.Context, req request) (interface{}, error) {
	return listCall("stats", s.Services.Journal.Stats)(ctx, req)
}
