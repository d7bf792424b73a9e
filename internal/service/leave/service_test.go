package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
)

// ========== FAKES ==========

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: map[string]leave.LeaveRequest{}}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("lr-%d", f.nextID)
	request.CreatedAt = time.Now().UTC()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) UpdateDecision(_ context.Context, update leave.DecisionUpdate) error {
	request, ok := f.requests[update.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}
	request.Status = update.Status
	request.DecidedBy = &update.DecidedBy
	request.DecidedAt = &update.DecidedAt
	request.AdminComment = update.AdminComment
	f.requests[update.ID] = request
	return nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(request.Status) != *filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeLeaveRepo) GetApprovedOverlapping(_ context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Status != leave.StatusApproved {
			continue
		}
		if !request.StartDate.After(to) && !request.EndDate.Before(from) {
			out = append(out, request)
		}
	}
	return out, nil
}

func adminContext(t *testing.T) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": "admin-1",
		"role":    "admin",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"role":        "employee",
		"employee_id": employeeID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// ========== TESTS ==========

func TestCreateRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	resp, err := svc.CreateRequest(employeeContext(t, "e1"), leave.CreateLeaveRequestRequest{
		LeaveType: "paid",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-12",
		Reason:    "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, "e1", resp.EmployeeID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2025-09-10", resp.StartDate)
	assert.Equal(t, "2025-09-12", resp.EndDate)
}

func TestCreateRequestValidation(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)
	ctx := employeeContext(t, "e1")

	// Unknown leave type.
	_, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "sabbatical",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-12",
		Reason:    "time off",
	})
	assert.Error(t, err)

	// End before start.
	_, err = svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		LeaveType: "paid",
		StartDate: "2025-09-12",
		EndDate:   "2025-09-10",
		Reason:    "time off",
	})
	assert.Error(t, err)
}

func TestApproveIsOneShot(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	created, err := svc.CreateRequest(employeeContext(t, "e1"), leave.CreateLeaveRequestRequest{
		LeaveType: "sick",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-11",
		Reason:    "flu",
	})
	require.NoError(t, err)

	ctx := adminContext(t)
	decided, err := svc.Approve(ctx, leave.DecideLeaveRequestRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	// A second decision of either kind must fail.
	_, err = svc.Reject(ctx, leave.DecideLeaveRequestRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = svc.Approve(ctx, leave.DecideLeaveRequestRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectWithComment(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	created, err := svc.CreateRequest(employeeContext(t, "e1"), leave.CreateLeaveRequestRequest{
		LeaveType: "unpaid",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-20",
		Reason:    "travel",
	})
	require.NoError(t, err)

	comment := "too long during release month"
	decided, err := svc.Reject(adminContext(t), leave.DecideLeaveRequestRequest{
		ID:           created.ID,
		AdminComment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)
	require.NotNil(t, decided.AdminComment)
	assert.Equal(t, comment, *decided.AdminComment)
}

func TestDecideUnknownRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	_, err := svc.Approve(adminContext(t), leave.DecideLeaveRequestRequest{ID: "missing"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestGetMyRequests(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	for _, employeeID := range []string{"e1", "e1", "e2"} {
		_, err := svc.CreateRequest(employeeContext(t, employeeID), leave.CreateLeaveRequestRequest{
			LeaveType: "paid",
			StartDate: "2025-09-10",
			EndDate:   "2025-09-10",
			Reason:    "errand",
		})
		require.NoError(t, err)
	}

	mine, err := svc.GetMyRequests(employeeContext(t, "e1"))
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestListRequestsByStatus(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo)

	created, err := svc.CreateRequest(employeeContext(t, "e1"), leave.CreateLeaveRequestRequest{
		LeaveType: "paid",
		StartDate: "2025-09-10",
		EndDate:   "2025-09-10",
		Reason:    "errand",
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(employeeContext(t, "e2"), leave.CreateLeaveRequestRequest{
		LeaveType: "sick",
		StartDate: "2025-09-11",
		EndDate:   "2025-09-11",
		Reason:    "fever",
	})
	require.NoError(t, err)

	_, err = svc.Approve(adminContext(t), leave.DecideLeaveRequestRequest{ID: created.ID})
	require.NoError(t, err)

	status := string(leave.StatusPending)
	pending, err := svc.ListRequests(context.Background(), leave.Filter{Status: &status})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "e2", pending[0].EmployeeID)
}
