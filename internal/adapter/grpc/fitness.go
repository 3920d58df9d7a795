package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/lifedash-backend/internal/usecase/fitness"
	"github.com/simaogato/lifedash-backend/internal/usecase/overload"
)

// ListWorkoutTemplates handles the ListWorkoutTemplates RPC
func (s *Server) ListWorkoutTemplates(ctx context.Context, req request) (interface{}, error) {
	return listCall("templates", s.Services.Fitness.ListTemplates)(ctx, req)
}

// GetWorkoutTemplate handles the GetWorkoutTemplate RPC
func (s *Server) GetWorkoutTemplate(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "template", s.Services.Fitness.GetTemplate)(ctx, req)
}

// CreateWorkoutTemplate handles the CreateWorkoutTemplate RPC
func (s *Server) CreateWorkoutTemplate(ctx context.Context, req request) (interface{}, error) {
	return inputCall("template", s.Services.Fitness.CreateTemplate)(ctx, req)
}

// DeleteWorkoutTemplate handles the DeleteWorkoutTemplate RPC
func (s *Server) DeleteWorkoutTemplate(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Fitness.DeleteTemplate)(ctx, req)
}

// AddExercise handles the AddExercise RPC
func (s *Server) AddExercise(ctx context.Context, req request) (interface{}, error) {
	// Parse template ID
	templateID, err := req.id("templateId")
	if err != nil {
		return nil, err
	}

	var input fitness.ExerciseInput
	if err := req.bind(&input); err != nil {
		return nil, err
	}

	exercise, err := s.Services.Fitness.AddExercise(ctx, templateID, input)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"exercise": exercise}, nil
}

// DeleteExercise handles the DeleteExercise RPC
func (s *Server) DeleteExercise(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Fitness.DeleteExercise)(ctx, req)
}

// LogExercise handles the LogExercise RPC
func (s *Server) LogExercise(ctx context.Context, req request) (interface{}, error) {
	// Parse exercise ID
	exerciseID, err := req.id("exerciseId")
	if err != nil {
		return nil, err
	}

	var input fitness.LogInput
	if err := req.bind(&input); err != nil {
		return nil, err
	}

	log, err := s.Services.Fitness.LogExercise(ctx, exerciseID, input)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"log": log}, nil
}

// ListExerciseLogs handles the ListExerciseLogs RPC
func (s *Server) ListExerciseLogs(ctx context.Context, req request) (interface{}, error) {
	exerciseID, err := req.id("exerciseId")
	if err != nil {
		return nil, err
	}
	limit, err := req.number("limit", 0)
	if err != nil {
		return nil, err
	}

	logs, err := s.Services.Fitness.ExerciseLogs(ctx, exerciseID, limit)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"logs": logs}, nil
}

// GetExerciseHistory handles the GetExerciseHistory RPC
func (s *Server) GetExerciseHistory(ctx context.Context, req request) (interface{}, error) {
	name, err := exerciseName(req)
	if err != nil {
		return nil, err
	}
	limit, err := req.number("limit", fitness.DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	history, err := s.Services.Fitness.History(ctx, name, limit)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"history": history}, nil
}

// GetLastPerformance handles the GetLastPerformance RPC.
// The response carries the latest performance (null when never logged)
// and the sets to prefill the next log with.
func (s *Server) GetLastPerformance(ctx context.Context, req request) (interface{}, error) {
	name, err := exerciseName(req)
	if err != nil {
		return nil, err
	}

	latest, err := s.Services.Fitness.LastPerformance(ctx, name)
	if err != nil {
		return nil, mapError(err)
	}
	return H{
		"performance": latest,
		"prefill":     overload.Prefill(latest),
	}, nil
}

func exerciseName(req request) (string, error) {
	name := req.text("exerciseName")
	if name == "" {
		return "", status.Error(codes.InvalidArgument, "exerciseName is required")
	}
	return name, nil
}
