package grpc

import (
	"context"

	"github.com/simaogato/lifedash-backend/internal/usecase/task"
)

// GetOverview handles the GetOverview RPC
func (s *Server) GetOverview(ctx context.Context, _ request) (interface{}, error) {
	overview, err := s.Services.Dashboard.GetOverview(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return overview, nil
}

// ListTasks handles the ListTasks RPC
func (s *Server) ListTasks(ctx context.Context, req request) (interface{}, error) {
	// Parse filter (empty means all)
	filter, err := task.ParseFilter(req.text("filter"))
	if err != nil {
		return nil, mapError(err)
	}

	tasks, err := s.Services.Tasks.List(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	return H{"tasks": tasks}, nil
}

// GetTaskCounts handles the GetTaskCounts RPC
func (s *Server) GetTaskCounts(ctx context.Context, req request) (interface{}, error) {
	return listCall("counts", s.Services.Tasks.Counts)(ctx, req)
}

// GetTask handles the GetTask RPC
func (s *Server) GetTask(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "task", s.Services.Tasks.Get)(ctx, req)
}

// CreateTask handles the CreateTask RPC
func (s *Server) CreateTask(ctx context.Context, req request) (interface{}, error) {
	return inputCall("task", s.Services.Tasks.Create)(ctx, req)
}

// UpdateTask handles the UpdateTask RPC
func (s *Server) UpdateTask(ctx context.Context, req request) (interface{}, error) {
	return updateCall("task", s.Services.Tasks.Update)(ctx, req)
}

// ToggleTask handles the ToggleTask RPC
func (s *Server) ToggleTask(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "task", s.Services.Tasks.Toggle)(ctx, req)
}

// DeleteTask handles the DeleteTask RPC
func (s *Server) DeleteTask(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Tasks.Delete)(ctx, req)
}
