package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/app"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

// dial starts a DashboardService over an in-memory listener
func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()

	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	services := app.New(memory.NewStore().Repositories(), calendar.New(la))
	services.SetClock(func() time.Time {
		return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	})

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	NewServer(services).Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func call(conn *grpc.ClientConn, method string, body map[string]interface{}) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(body)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	err = conn.Invoke(context.Background(), "/"+ServiceName+"/"+method, in, out)
	return out, err
}

func TestServer_TaskLifecycle(t *testing.T) {
	// Setup
	conn := dial(t)

	// Execute
	created, err := call(conn, "CreateTask", map[string]interface{}{
		"title":    "File taxes",
		"priority": 3,
		"dueDate":  "2024-03-14T12:00:00Z",
	})
	require.NoError(t, err)

	// Assert
	task := created.Fields["task"].GetStructValue()
	require.NotNil(t, task)
	assert.Equal(t, "File taxes", task.Fields["title"].GetStringValue())
	assert.Equal(t, "pending", task.Fields["status"].GetStringValue())
	assert.Equal(t, "overdue", task.Fields["urgency"].GetStringValue())

	id := task.Fields["id"].GetStringValue()
	toggled, err := call(conn, "ToggleTask", map[string]interface{}{"id": id})
	require.NoError(t, err)
	assert.Equal(t, "completed", toggled.Fields["task"].GetStructValue().Fields["status"].GetStringValue())

	counts, err := call(conn, "GetTaskCounts", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, float64(1), counts.Fields["counts"].GetStructValue().Fields["completed"].GetNumberValue())

	deleted, err := call(conn, "DeleteTask", map[string]interface{}{"id": id})
	require.NoError(t, err)
	assert.True(t, deleted.Fields["success"].GetBoolValue())

	_, err = call(conn, "GetTask", map[string]interface{}{"id": id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_InvalidArguments(t *testing.T) {
	conn := dial(t)

	tests := []struct {
		name   string
		method string
		body   map[string]interface{}
	}{
		{"Malformed ID", "GetTask", map[string]interface{}{"id": "not-a-uuid"}},
		{"Empty Title", "CreateTask", map[string]interface{}{"title": ""}},
		{"Unknown Filter", "ListTasks", map[string]interface{}{"filter": "someday"}},
		{"Fractional Limit", "ListExerciseLogs", map[string]interface{}{"exerciseId": uuid.NewString(), "limit": 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call(conn, tt.method, tt.body)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
		})
	}
}

func TestServer_LastPerformancePrefill(t *testing.T) {
	// Setup
	conn := dial(t)

	tmpl, err := call(conn, "CreateWorkoutTemplate", map[string]interface{}{"name": "Push Day"})
	require.NoError(t, err)
	templateID := tmpl.Fields["template"].GetStructValue().Fields["id"].GetStringValue()

	ex, err := call(conn, "AddExercise", map[string]interface{}{
		"templateId": templateID,
		"name":       "Bench Press",
		"sets":       "3 Working Sets",
	})
	require.NoError(t, err)
	exerciseID := ex.Fields["exercise"].GetStructValue().Fields["id"].GetStringValue()

	_, err = call(conn, "LogExercise", map[string]interface{}{
		"exerciseId": exerciseID,
		"entries": []interface{}{
			map[string]interface{}{"weight": 135, "reps": 10},
			map[string]interface{}{"weight": 135, "reps": 8},
		},
	})
	require.NoError(t, err)

	// Execute
	resp, err := call(conn, "GetLastPerformance", map[string]interface{}{"exerciseName": "Bench Press"})

	// Assert
	require.NoError(t, err)
	prefill := resp.Fields["prefill"].GetListValue().GetValues()
	require.Len(t, prefill, 2)
	assert.Equal(t, float64(135), prefill[0].GetStructValue().Fields["weight"].GetNumberValue())
	assert.Equal(t, float64(8), prefill[1].GetStructValue().Fields["reps"].GetNumberValue())
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"Domain Not Found", domain.NotFound("task", uuid.Nil), codes.NotFound},
		{"Domain Invalid", fmt.Errorf("%w: title is required", domain.ErrInvalidInput), codes.InvalidArgument},
		{"Status Passthrough", status.Error(codes.PermissionDenied, "nope"), codes.PermissionDenied},
		{"Deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"Message Heuristic", errors.New("amount must be positive"), codes.InvalidArgument},
		{"Unknown", errors.New("connection reset"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, status.Code(mapError(tt.err)))
		})
	}
	assert.NoError(t, mapError(nil))
}
