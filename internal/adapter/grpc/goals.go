package grpc

import (
	"context"

	"github.com/simaogato/lifedash-backend/internal/domain"
)

// ListGoals handles the ListGoals RPC
func (s *Server) ListGoals(ctx context.Context, req request) (interface{}, error) {
	goals, err := s.Services.Goals.List(ctx, domain.GoalType(req.text("type")))
	if err != nil {
		return nil, mapError(err)
	}
	return H{"goals": goals}, nil
}

// GetGoalStats handles the GetGoalStats RPC
func (s *Server) GetGoalStats(ctx context.Context, req request) (interface{}, error) {
	return listCall("stats", s.Services.Goals.Stats)(ctx, req)
}

// CreateGoal handles the CreateGoal RPC
func (s *Server) CreateGoal(ctx context.Context, req request) (interface{}, error) {
	return inputCall("goal", s.Services.Goals.Create)(ctx, req)
}

// UpdateGoal handles the UpdateGoal RPC
func (s *Server) UpdateGoal(ctx context.Context, req request) (interface{}, error) {
	return updateCall("goal", s.Services.Goals.Update)(ctx, req)
}

// ToggleGoal handles the ToggleGoal RPC
func (s *Server) ToggleGoal(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "goal", s.Services.Goals.Toggle)(ctx, req)
}

// DeleteGoal handles the DeleteGoal RPC
func (s *Server) DeleteGoal(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Goals.Delete)(ctx, req)
}
