package leave

import (
	"context"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/leave"
)

const dateLayout = "2006-01-02"

type leaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &leaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateApplication implements leave.LeaveService.
func (s *leaveServiceImpl) CreateApplication(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	// The employee must exist before filing on their behalf.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	fromDate, _ := time.Parse(dateLayout, req.FromDate)
	toDate, _ := time.Parse(dateLayout, req.ToDate)

	application := leave.LeaveApplication{
		EmployeeID:     req.EmployeeID,
		FromDate:       fromDate,
		ToDate:         toDate,
		LeaveType:      req.LeaveType,
		Description:    req.Description,
		TotalLeaveDays: toDate.Sub(fromDate).Hours()/24 + 1,
		Status:         "Open",
		PostingDate:    s.now(),
		Company:        req.Company,
	}

	created, err := s.leaveRepo.Create(ctx, application)
	if err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	return toResponse(created), nil
}

// ListForApprover implements leave.LeaveService.
func (s *leaveServiceImpl) ListForApprover(ctx context.Context, approver string) ([]leave.LeaveApplicationResponse, error) {
	applications, err := s.leaveRepo.ListByApprover(ctx, approver)
	if err != nil {
		return nil, err
	}
	return toResponses(applications), nil
}

// ListForEmployee implements leave.LeaveService.
func (s *leaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApplicationResponse, error) {
	applications, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(applications), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *leaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	updated, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveApplicationResponse{}, err
	}

	return toResponse(updated), nil
}

func toResponse(app leave.LeaveApplication) leave.LeaveApplicationResponse {
	return leave.LeaveApplicationResponse{
		ID:             app.ID,
		EmployeeID:     app.EmployeeID,
		FromDate:       app.FromDate.Format(dateLayout),
		ToDate:         app.ToDate.Format(dateLayout),
		LeaveType:      app.LeaveType,
		Description:    app.Description,
		TotalLeaveDays: app.TotalLeaveDays,
		LeaveApprover:  app.LeaveApprover,
		Status:         app.Status,
		PostingDate:    app.PostingDate.Format(dateLayout),
	}
}

func toResponses(applications []leave.LeaveApplication) []leave.LeaveApplicationResponse {
	responses := make([]leave.LeaveApplicationResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, toResponse(app))
	}
	return responses
}
