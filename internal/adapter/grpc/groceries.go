package grpc

import (
	"context"
)

// ListGroceries handles the ListGroceries RPC
func (s *Server) ListGroceries(ctx context.Context, req request) (interface{}, error) {
	return listCall("items", s.Services.Groceries.List)(ctx, req)
}

// GetGroceryCounts handles the GetGroceryCounts RPC
func (s *Server) GetGroceryCounts(ctx context.Context, req request) (interface{}, error) {
	return listCall("counts", s.Services.Groceries.Counts)(ctx, req)
}

// CreateGroceryItem handles the CreateGroceryItem RPC
func (s *Server) CreateGroceryItem(ctx context.Context, req request) (interface{}, error) {
	return inputCall("item", s.Services.Groceries.Create)(ctx, req)
}

// UpdateGroceryItem handles the UpdateGroceryItem RPC
func (s *Server) UpdateGroceryItem(ctx context.Context, req request) (interface{}, error) {
	return updateCall("item", s.Services.Groceries.Update)(ctx, req)
}

// ToggleGroceryItem handles the ToggleGroceryItem RPC
func (s *Server) ToggleGroceryItem(ctx context.Context, req request) (interface{}, error) {
	return idCall("id", "item", s.Services.Groceries.Toggle)(ctx, req)
}

// DeleteGroceryItem handles the DeleteGroceryItem RPC
func (s *Server) DeleteGroceryItem(ctx context.Context, req request) (interface{}, error) {
	return deleteCall(s.Services.Groceries.Delete)(ctx, req)
}

// ClearCheckedGroceries handles the ClearCheckedGroceries RPC
func (s *Server) ClearCheckedGroceries(ctx context.Context, req request) (interface{}, error) {
	return listCall("removed", s.Services.Groceries.ClearChecked)(ctx, req)
}
