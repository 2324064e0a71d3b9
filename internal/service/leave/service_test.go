package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/leave"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	applications map[string]leave.LeaveApplication
	nextID       int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{applications: make(map[string]leave.LeaveApplication)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, application leave.LeaveApplication) (leave.LeaveApplication, error) {
	f.nextID++
	application.ID = "HR-LAP-0000" + string(rune('0'+f.nextID))
	f.applications[application.ID] = application
	return application, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	app, ok := f.applications[id]
	if !ok {
		return leave.LeaveApplication{}, leave.ErrLeaveApplicationNotFound
	}
	return app, nil
}

func (f *fakeLeaveRepo) ListByApprover(ctx context.Context, approver string) ([]leave.LeaveApplication, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	for _, app := range f.applications {
		if app.EmployeeID == employeeID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	app, ok := f.applications[id]
	if !ok {
		return leave.ErrLeaveApplicationNotFound
	}
	app.Status = status
	f.applications[id] = app
	return nil
}

type fakeEmployeeRepo struct {
	knownID string
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id == f.knownID {
		return employee.Employee{ID: id, Name: "Alice Fernandes"}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListWithHolidayList(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListBirthdaysToday(ctx context.Context, month int, day int) ([]employee.Employee, error) {
	return nil, nil
}

func newTestService(leaveRepo *fakeLeaveRepo) leave.LeaveService {
	svc := NewLeaveService(leaveRepo, &fakeEmployeeRepo{knownID: "EMP-00001"})
	svc.(*leaveServiceImpl).now = func() time.Time {
		return time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreateApplication(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateApplication(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "EMP-00001",
		LeaveType:  "Casual Leave",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Open", created.Status)
	assert.Equal(t, "2024-03-04", created.PostingDate)
	assert.Equal(t, 3.0, created.TotalLeaveDays)
	assert.Equal(t, "2024-03-11", created.FromDate)
	assert.Equal(t, "2024-03-13", created.ToDate)
}

func TestCreateApplication_UnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.CreateApplication(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "EMP-99999",
		LeaveType:  "Casual Leave",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-13",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}

func TestCreateApplication_InvalidDates(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.CreateApplication(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "EMP-00001",
		LeaveType:  "Casual Leave",
		FromDate:   "2024-03-13",
		ToDate:     "2024-03-11",
	})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created, err := svc.CreateApplication(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "EMP-00001",
		LeaveType:  "Sick Leave",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-11",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{
		ID:     created.ID,
		Status: "Approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "Approved", updated.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{
		ID:     "HR-LAP-00001",
		Status: "Frobnicated",
	})
	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{
		ID:     "HR-LAP-09999",
		Status: "Approved",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, leave.ErrLeaveApplicationNotFound))
}
