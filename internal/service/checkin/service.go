package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/checkin"
	"github.com/flamingo-hr/attendance-backend-go/internal/domain/employee"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/sse"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/validator"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"

	recentPunchLimit    = 5
	regulariseListLimit = 5
	attendanceDayLimit  = 10
)

type checkinServiceImpl struct {
	checkinRepo  checkin.CheckinRepository
	employeeRepo employee.EmployeeRepository
	sseHub       *sse.Hub
	now          func() time.Time
}

func NewCheckinService(checkinRepo checkin.CheckinRepository, employeeRepo employee.EmployeeRepository, sseHub *sse.Hub) checkin.CheckinService {
	return &checkinServiceImpl{
		checkinRepo:  checkinRepo,
		employeeRepo: employeeRepo,
		sseHub:       sseHub,
		now:          time.Now,
	}
}

// Punch implements checkin.CheckinService.
func (s *checkinServiceImpl) Punch(ctx context.Context, req checkin.PunchRequest) (checkin.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.PunchResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return checkin.PunchResponse{}, err
	}

	lastType, err := s.checkinRepo.LastLogType(ctx, req.EmployeeID)
	if err != nil {
		return checkin.PunchResponse{}, err
	}

	logType := checkin.LogTypeIn
	if lastType == checkin.LogTypeIn {
		logType = checkin.LogTypeOut
	}

	created, err := s.checkinRepo.Create(ctx, checkin.Checkin{
		EmployeeID: req.EmployeeID,
		LogType:    logType,
		PunchedAt:  s.now(),
		DeviceID:   "WebApp",
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return checkin.PunchResponse{}, err
	}

	return checkin.PunchResponse{
		ID:      created.ID,
		LogType: created.LogType,
		Message: fmt.Sprintf("Checked %s successfully", logTypeWord(logType)),
	}, nil
}

// RecentCheckins implements checkin.CheckinService.
func (s *checkinServiceImpl) RecentCheckins(ctx context.Context, employeeID string) ([]checkin.CheckinResponse, error) {
	checkins, err := s.checkinRepo.ListRecent(ctx, employeeID, recentPunchLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]checkin.CheckinResponse, 0, len(checkins))
	for _, c := range checkins {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

// AttendanceLog implements checkin.CheckinService.
func (s *checkinServiceImpl) AttendanceLog(ctx context.Context, employeeID string) (checkin.AttendanceLogResponse, error) {
	punches, err := s.checkinRepo.ListPunchesDesc(ctx, employeeID)
	if err != nil {
		return checkin.AttendanceLogResponse{}, err
	}

	return checkin.AttendanceLogResponse{
		EmployeeID: employeeID,
		Records:    foldAttendanceDays(employeeID, punches, attendanceDayLimit),
	}, nil
}

// RequestRegularise implements checkin.CheckinService.
func (s *checkinServiceImpl) RequestRegularise(ctx context.Context, req checkin.RegulariseRequest) (checkin.CheckinResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.CheckinResponse{}, err
	}
	newTime, _ := validator.IsValidDateTime(req.NewTime)

	if _, err := s.checkinRepo.GetByID(ctx, req.ID); err != nil {
		return checkin.CheckinResponse{}, err
	}

	if err := s.checkinRepo.SetRegulariseRequest(ctx, req.ID, newTime); err != nil {
		return checkin.CheckinResponse{}, err
	}

	updated, err := s.checkinRepo.GetByID(ctx, req.ID)
	if err != nil {
		return checkin.CheckinResponse{}, err
	}

	if updated.RegulariseApprover != nil {
		s.sseHub.Publish(*updated.RegulariseApprover, sse.Event{
			UserID: *updated.RegulariseApprover,
			Event:  "refresh_checkin_form",
			Data:   map[string]string{"checkin": updated.ID},
		})
	}

	return toResponse(updated), nil
}

// RegulariseQueue implements checkin.CheckinService.
func (s *checkinServiceImpl) RegulariseQueue(ctx context.Context, approver string) ([]checkin.CheckinResponse, error) {
	checkins, err := s.checkinRepo.ListOpenRegularise(ctx, approver, regulariseListLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]checkin.CheckinResponse, 0, len(checkins))
	for _, c := range checkins {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

// DecideRegularise implements checkin.CheckinService.
func (s *checkinServiceImpl) DecideRegularise(ctx context.Context, req checkin.RegulariseDecisionRequest) (checkin.RegulariseDecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return checkin.RegulariseDecisionResponse{}, err
	}

	c, err := s.checkinRepo.GetByID(ctx, req.ID)
	if err != nil {
		return checkin.RegulariseDecisionResponse{}, err
	}

	switch req.Status {
	case checkin.RegulariseApproved:
		if c.RegulariseTime == nil {
			return checkin.RegulariseDecisionResponse{}, checkin.ErrNoRegulariseTime
		}
		if err := s.checkinRepo.ApplyRegulariseTime(ctx, req.ID, *c.RegulariseTime); err != nil {
			return checkin.RegulariseDecisionResponse{}, err
		}
	default:
		if err := s.checkinRepo.UpdateRegulariseStatus(ctx, req.ID, checkin.RegulariseRejected); err != nil {
			return checkin.RegulariseDecisionResponse{}, err
		}
	}

	updated, err := s.checkinRepo.GetByID(ctx, req.ID)
	if err != nil {
		return checkin.RegulariseDecisionResponse{}, err
	}

	s.sseHub.Publish(updated.EmployeeID, sse.Event{
		UserID: updated.EmployeeID,
		Event:  "refresh_checkin_form",
		Data:   map[string]string{"checkin": updated.ID},
	})

	resp := checkin.RegulariseDecisionResponse{
		ID:        updated.ID,
		Action:    req.Status,
		PunchedAt: updated.PunchedAt.Format(timestampLayout),
	}
	if updated.RegulariseTime != nil {
		t := updated.RegulariseTime.Format(timestampLayout)
		resp.RegulariseTime = &t
	}
	if updated.RegulariseStatus != nil {
		resp.RegulariseStatus = *updated.RegulariseStatus
	}
	return resp, nil
}

func toResponse(c checkin.Checkin) checkin.CheckinResponse {
	resp := checkin.CheckinResponse{
		ID:                 c.ID,
		EmployeeID:         c.EmployeeID,
		EmployeeName:       c.EmployeeName,
		LogType:            c.LogType,
		PunchedAt:          c.PunchedAt.Format(timestampLayout),
		RegulariseApprover: c.RegulariseApprover,
		RegulariseStatus:   c.RegulariseStatus,
	}
	if c.RegulariseTime != nil {
		t := c.RegulariseTime.Format(timestampLayout)
		resp.RegulariseTime = &t
	}
	return resp
}

func logTypeWord(logType string) string {
	if logType == checkin.LogTypeOut {
		return "out"
	}
	return "in"
}

// foldAttendanceDays derives one attendance row per calendar day from raw
// punches ordered newest first. The first IN and OUT seen win, so the day's
// latest punches decide its times. A day is Present only when an IN exists.
func foldAttendanceDays(employeeID string, punches []checkin.Checkin, limit int) []checkin.AttendanceDay {
	type dayPunches struct {
		inTime  *time.Time
		outTime *time.Time
	}

	byDay := make(map[string]*dayPunches)
	var order []string

	for _, p := range punches {
		key := p.PunchedAt.Format(dateLayout)
		day, ok := byDay[key]
		if !ok {
			if len(byDay) >= limit {
				continue
			}
			day = &dayPunches{}
			byDay[key] = day
			order = append(order, key)
		}

		t := p.PunchedAt
		switch p.LogType {
		case checkin.LogTypeIn:
			if day.inTime == nil {
				day.inTime = &t
			}
		case checkin.LogTypeOut:
			if day.outTime == nil {
				day.outTime = &t
			}
		}
	}

	records := make([]checkin.AttendanceDay, 0, len(order))
	for _, key := range order {
		day := byDay[key]
		record := checkin.AttendanceDay{
			EmployeeID: employeeID,
			Date:       key,
			Status:     "Absent",
		}
		if day.inTime != nil {
			in := day.inTime.Format("15:04:05")
			record.InTime = &in
			record.Status = "Present"
		}
		if day.outTime != nil {
			out := day.outTime.Format("15:04:05")
			record.OutTime = &out
		}
		if day.inTime != nil && day.outTime != nil && day.outTime.After(*day.inTime) {
			worked := day.outTime.Sub(*day.inTime)
			hours := fmt.Sprintf("%02d:%02d:%02d",
				int(worked.Hours()),
				int(worked.Minutes())%60,
				int(worked.Seconds())%60,
			)
			record.WorkingHours = &hours
		}
		records = append(records, record)
	}

	return records
}
