package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/lifedash-backend/internal/usecase/diet"
)

// GetDietLog handles the GetDietLog RPC. The log is null when nothing was
// recorded for the day.
func (s *Server) GetDietLog(ctx context.Context, req request) (interface{}, error) {
	// Parse optional date (defaults to today)
	var date *time.Time
	if raw := req.text("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid date format: %v", err)
		}
		date = &parsed
	}

	log, err := s.Services.Diet.GetLog(ctx, date)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"log": log}, nil
}

// ListDietLogs handles the ListDietLogs RPC
func (s *Server) ListDietLogs(ctx context.Context, req request) (interface{}, error) {
	days, err := req.number("days", diet.DefaultLogDays)
	if err != nil {
		return nil, err
	}

	logs, err := s.Services.Diet.ListLogs(ctx, days)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"logs": logs}, nil
}

// UpsertDietLog handles the UpsertDietLog RPC
func (s *Server) UpsertDietLog(ctx context.Context, req request) (interface{}, error) {
	return inputCall("log", s.Services.Diet.UpsertLog)(ctx, req)
}

// GetDietGoals handles the GetDietGoals RPC
func (s *Server) GetDietGoals(ctx context.Context, req request) (interface{}, error) {
	return listCall("goals", s.Services.Diet.Goals)(ctx, req)
}

// UpdateDietGoals handles the UpdateDietGoals RPC
func (s *Server) UpdateDietGoals(ctx context.Context, req request) (interface{}, error) {
	return inputCall("goals", s.Services.Diet.UpdateGoals)(ctx, req)
}

// ListSupplements handles the ListSupplements RPC
func (s *Server) ListSupplements(ctx context.Context, req request) (interface{}, error) {
	supplements, err := s.Services.Diet.ListSupplements(ctx, req.flag("activeOnly"))
	if err != nil {
		return nil, mapError(err)
	}
	return H{"supplements": supplements}, nil
}

// CreateSupplement handles the CreateSupplement RPC
func (s *Server) CreateSupplement(ctx context.Context, req request) (interface{}, error) {
	return inputCall("supplement", s.Services.Diet.CreateSupplement)(ctx, req)
}

// UpdateSupplement handles the UpdateSupplement RPC
func (s *Server) UpdateSupplement(ctx context.Context, req request) (interface{}, error) {
	return updateCall("supplement", s.Services.Diet.UpdateSupplement)(ctx, req)
}

// ToggleSupplement handles the ToggleSupplement RPC
func (s *Server) ToggleSupplement(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "supplement", s.Services.Diet.ToggleSupplement)(ctx, req)
}

// DeleteSupplement handles the DeleteSupplement RPC
func (s *Server) DeleteSupplement(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Diet.DeleteSupplement)(ctx, req)
}

// ListWeights handles the ListWeights RPC
func (s *Server) ListWeights(ctx context.Context, req request) (interface{}, error) {
	days, err := req.number("days", diet.DefaultWeightDays)
	if err != nil {
		return nil, err
	}

	weights, err := s.Services.Diet.ListWeights(ctx, days)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"weights": weights}, nil
}

// LogWeight handles the LogWeight RPC
func (s *Server) LogWeight(ctx context.Context, req request) (interface{}, error) {
	return inputCall("weight", s.Services.Diet.LogWeight)(ctx, req)
}

// DeleteWeight handles the DeleteWeight RPC
func (s *Server) DeleteWeight(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Diet.DeleteWeight)(ctx, req)
}

// GetDietStats handles the GetDietStats RPC
func (s *Server) GetDietStats(ctx context.Context, req request) (interface{}, error) {
	return listCall("stats", s.Services.Diet.Stats)(ctx, req)
}
