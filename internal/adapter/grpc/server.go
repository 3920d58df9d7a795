package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/lifedash-backend/internal/app"
	"github.com/simaogato/lifedash-backend/internal/domain"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dashboard.v1.DashboardService"

// H is a response body
type H map[string]interface{}

// Server implements the DashboardService gRPC server. Every method takes a
// google.protobuf.Struct request and returns a google.protobuf.Struct
// response whose fields follow the JSON shape of the domain types.
type Server struct {
	Services *app.Services
}

// NewServer creates a new gRPC server instance
func NewServer(services *app.Services) *Server {
	return &Server{Services: services}
}

// handler serves one RPC
type handler func(ctx context.Context, req request) (interface{}, error)

// Register adds the DashboardService to r
func (s *Server) Register(r grpc.ServiceRegistrar) {
	r.RegisterService(s.ServiceDesc(), s)
}

// ServiceDesc describes every RPC of the DashboardService
func (s *Server) ServiceDesc() *grpc.ServiceDesc {
	handlers := []struct {
		name string
		call handler
	}{
		{"GetOverview", s.GetOverview},

		{"ListTasks", s.ListTasks},
		{"GetTaskCounts", s.GetTaskCounts},
		{"GetTask", s.GetTask},
		{"CreateTask", s.CreateTask},
		{"UpdateTask", s.UpdateTask},
		{"ToggleTask", s.ToggleTask},
		{"DeleteTask", s.DeleteTask},

		{"ListJournalEntries", s.ListJournalEntries},
		{"GetJournalEntry", s.GetJournalEntry},
		{"CreateJournalEntry", s.CreateJournalEntry},
		{"UpdateJournalEntry", s.UpdateJournalEntry},
		{"DeleteJournalEntry", s.DeleteJournalEntry},
		{"GetJournalStats", s.GetJournalStats},

		{"ListWorkoutTemplates", s.ListWorkoutTemplates},
		{"GetWorkoutTemplate", s.GetWorkoutTemplate},
		{"CreateWorkoutTemplate", s.CreateWorkoutTemplate},
		{"DeleteWorkoutTemplate", s.DeleteWorkoutTemplate},
		{"AddExercise", s.AddExercise},
		{"DeleteExercise", s.DeleteExercise},
		{"LogExercise", s.LogExercise},
		{"ListExerciseLogs", s.ListExerciseLogs},
		{"GetExerciseHistory", s.GetExerciseHistory},
		{"GetLastPerformance", s.GetLastPerformance},

		{"ListHoldings", s.ListHoldings},
		{"GetPortfolio", s.GetPortfolio},
		{"AddHolding", s.AddHolding},
		{"UpdateHolding", s.UpdateHolding},
		{"DeleteHolding", s.DeleteHolding},
		{"ListWatchlist", s.ListWatchlist},
		{"AddToWatchlist", s.AddToWatchlist},
		{"UpdateWatchlistNotes", s.UpdateWatchlistNotes},
		{"RemoveFromWatchlist", s.RemoveFromWatchlist},

		{"ListGoals", s.ListGoals},
		{"GetGoalStats", s.GetGoalStats},
		{"CreateGoal", s.CreateGoal},
		{"UpdateGoal", s.UpdateGoal},
		{"ToggleGoal", s.ToggleGoal},
		{"DeleteGoal", s.DeleteGoal},

		{"GetDietLog", s.GetDietLog},
		{"ListDietLogs", s.ListDietLogs},
		{"UpsertDietLog", s.UpsertDietLog},
		{"GetDietGoals", s.GetDietGoals},
		{"UpdateDietGoals", s.UpdateDietGoals},
		{"ListSupplements", s.ListSupplements},
		{"CreateSupplement", s.CreateSupplement},
		{"UpdateSupplement", s.UpdateSupplement},
		{"ToggleSupplement", s.ToggleSupplement},
		{"DeleteSupplement", s.DeleteSupplement},
		{"ListWeights", s.ListWeights},
		{"LogWeight", s.LogWeight},
		{"DeleteWeight", s.DeleteWeight},
		{"GetDietStats", s.GetDietStats},

		{"ListGroceries", s.ListGroceries},
		{"GetGroceryCounts", s.GetGroceryCounts},
		{"CreateGroceryItem", s.CreateGroceryItem},
		{"UpdateGroceryItem", s.UpdateGroceryItem},
		{"ToggleGroceryItem", s.ToggleGroceryItem},
		{"DeleteGroceryItem", s.DeleteGroceryItem},
		{"ClearCheckedGroceries", s.ClearCheckedGroceries},

		{"ListIdeas", s.ListIdeas},
		{"GetIdeaStats", s.GetIdeaStats},
		{"CreateIdea", s.CreateIdea},
		{"UpdateIdea", s.UpdateIdea},
		{"ToggleIdeaPin", s.ToggleIdeaPin},
		{"DeleteIdea", s.DeleteIdea},

		{"GetDailyQuote", s.GetDailyQuote},
		{"SetDailyQuote", s.SetDailyQuote},
		{"ListQuotes", s.ListQuotes},

		{"GetExportStats", s.GetExportStats},
		{"Export", s.Export},
	}

	methods := make([]grpc.MethodDesc, 0, len(handlers))
	for _, h := range handlers {
		methods = append(methods, unary(h.name, h.call))
	}

	return &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*interface{})(nil),
		Methods:     methods,
		Streams:     []grpc.StreamDesc{},
		Metadata:    "dashboard/v1/dashboard.proto",
	}
}

// unary adapts a handler to the generated-code calling convention
func unary(name string, call handler) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			invoke := func(ctx context.Context, req interface{}) (interface{}, error) {
				return serve(ctx, req.(*structpb.Struct), call)
			}
			if interceptor == nil {
				return invoke(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			return interceptor(ctx, in, info, invoke)
		},
	}
}

// serve decodes the request, calls the handler and encodes its result
func serve(ctx context.Context, in *structpb.Struct, call handler) (*structpb.Struct, error) {
	body, err := protojson.Marshal(in)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	req, err := newRequest(body)
	if err != nil {
		return nil, err
	}
	result, err := call(ctx, req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = H{}
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	out := new(structpb.Struct)
	if err := protojson.Unmarshal(encoded, out); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// request is the JSON form of a Struct request
type request struct {
	body   []byte
	fields map[string]interface{}
}

func newRequest(body []byte) (request, error) {
	req := request{body: body}
	if err := json.Unmarshal(body, &req.fields); err != nil {
		return request{}, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return req, nil
}

// bind decodes the request into v
func (r request) bind(v interface{}) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}
	return nil
}

// id parses the named field as a UUID
func (r request) id(field string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.text(field))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

// text returns the named field, or "" when it is absent or not a string
func (r request) text(field string) string {
	s, _ := r.fields[field].(string)
	return s
}

// number returns the named integer field, or fallback when it is absent
func (r request) number(field string, fallback int) (int, error) {
	v, ok := r.fields[field]
	if !ok || v == nil {
		return fallback, nil
	}
	n, ok := v.(float64)
	if !ok || n != float64(int(n)) {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be an integer", field)
	}
	return int(n), nil
}

// flag returns the named boolean field, false when absent
func (r request) flag(field string) bool {
	b, _ := r.fields[field].(bool)
	return b
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	errorMsg := err.Error()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", errorMsg)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", errorMsg)
	}

	// Map common validation errors to InvalidArgument
	if strings.Contains(errorMsg, "must be") ||
		strings.Contains(errorMsg, "invalid") ||
		strings.Contains(errorMsg, "is required") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	// Map "not found" errors to NotFound
	if strings.Contains(errorMsg, "not found") {
		return status.Errorf(codes.NotFound, "%s", errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", errorMsg)
}

// idCall adapts a service call taking only an id
func idCall[T any](field, key string, call func(context.Context, uuid.UUID) (T, error)) handler {
	return func(ctx context.Context, req request) (interface{}, error) {
		id, err := req.id(field)
		if err != nil {
			return nil, err
		}
		out, err := call(ctx, id)
		if err != nil {
			return nil, mapError(err)
		}
		return H{key: out}, nil
	}
}

// deleteCall adapts a delete taking only an id
func deleteCall(call func(context.Context, uuid.UUID) error) handler {
	return func(ctx context.Context, req request) (interface{}, error) {
		id, err := req.id("id")
		if err != nil {
			return nil, err
		}
		if err := call(ctx, id); err != nil {
			return nil, mapError(err)
		}
		return H{"success": true}, nil
	}
}

// listCall adapts a call without arguments
func listCall[T any](key string, call func(context.Context) (T, error)) handler {
	return func(ctx context.Context, _ request) (interface{}, error) {
		out, err := call(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return H{key: out}, nil
	}
}

// inputCall adapts a call taking a decoded input
func inputCall[I, T any](key string, call func(context.Context, I) (T, error)) handler {
	return func(ctx context.Context, req request) (interface{}, error) {
		var input I
		if err := req.bind(&input); err != nil {
			return nil, err
		}
		out, err := call(ctx, input)
		if err != nil {
			return nil, mapError(err)
		}
		return H{key: out}, nil
	}
}

// updateCall adapts a call taking an id and a decoded input
func updateCall[I, T any](key string, call func(context.Context, uuid.UUID, I) (T, error)) handler {
	return func(ctx context.Context, req request) (interface{}, error) {
		id, err := req.id("id")
		if err != nil {
			return nil, err
		}
		var input I
		if err := req.bind(&input); err != nil {
			return nil, err
		}
		out, err := call(ctx, id, input)
		if err != nil {
			return nil, mapError(err)
		}
		return H{key: out}, nil
	}
}
