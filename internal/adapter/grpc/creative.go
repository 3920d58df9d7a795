package grpc

import (
	"context"
)

// ListIdeas handles the ListIdeas RPC
func (s *Server) ListIdeas(ctx context.Context, req request) (interface{}, error) {
	ideas, err := s.Services.Creative.List(ctx, req.text("category"))
	if err != nil {
		return nil, mapError(err)
	}
	return H{"ideas": ideas}, nil
}

// GetIdeaStats handles the GetIdeaStats RPC
func (s *Server) GetIdeaStats(ctx context.Context, req request) (interface{}, error) {
	return listCall("stats", s.Services.Creative.Stats)(ctx, req)
}

// CreateIdea handles the CreateIdea RPC
func (s *Server) CreateIdea(ctx context.Context, req request) (interface{}, error) {
	return inputCall("idea", s.Services.Creative.Create)(ctx, req)
}

// UpdateIdea handles the UpdateIdea RPC
func (s *Server) UpdateIdea(ctx context.Context, req request) (interface{}, error) {
	return updateCall("idea", s.Services.Creative.Update)(ctx, req)
}

// ToggleIdeaPin handles the ToggleIdeaPin RPC
func (s *Server) ToggleIdeaPin(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "idea", s.Services.Creative.TogglePin)(ctx, req)
}

// DeleteIdea handles the DeleteIdea RPC
func (s *Server) DeleteIdea(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Creative.Delete)(ctx, req)
}
