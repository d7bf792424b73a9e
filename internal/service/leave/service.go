package leave

import (
	"context"
	"time"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/leave"
	"github.com/staffly-hr/staffly-backend-go/internal/pkg/jwt"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
}

func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	employeeID := req.EmployeeID
	if employeeID == "" {
		claims, err := jwt.ClaimsFromContext(ctx)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if claims.EmployeeID == nil {
			return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
		}
		employeeID = *claims.EmployeeID
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(created), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

// decide records the one-time pending to approved/rejected transition. The
// repository's guarded UPDATE makes the transition first-writer-wins; a
// second decision comes back as ErrLeaveAlreadyProcessed.
func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequestRequest, status leave.RequestStatus) (leave.LeaveRequestResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	err = s.leaveRepo.UpdateDecision(ctx, leave.DecisionUpdate{
		ID:           req.ID,
		Status:       status,
		DecidedBy:    claims.UserID,
		DecidedAt:    time.Now().UTC(),
		AdminComment: req.AdminComment,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decided, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return toLeaveRequestResponse(decided), nil
}

func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if claims.EmployeeID == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, *claims.EmployeeID)
	if err != nil {
		return nil, err
	}

	return toLeaveRequestResponses(requests), nil
}

func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toLeaveRequestResponses(requests), nil
}

func toLeaveRequestResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		LeaveType:    string(request.LeaveType),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Reason:       request.Reason,
		Status:       string(request.Status),
		AdminComment: request.AdminComment,
	}
	if request.EmployeeName != nil {
		resp.EmployeeName = *request.EmployeeName
	}
	if request.DecidedAt != nil {
		formatted := request.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &formatted
	}
	return resp
}

func toLeaveRequestResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveRequestResponse(request))
	}
	return responses
}
