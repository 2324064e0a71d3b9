package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/flamingo-hr/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByHolidayList implements holiday.HolidayRepository.
func (r *holidayRepository) ListByHolidayList(ctx context.Context, holidayList string) ([]holiday.Holiday, error) {
	query := `
		SELECT holiday_list_id, holiday_date, COALESCE(description, ''), weekly_off
		FROM holidays
		WHERE holiday_list_id = $1
		  AND weekly_off = FALSE
		ORDER BY holiday_date ASC
	`

	rows, err := r.db.Query(ctx, query, holidayList)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.HolidayList, &h.Date, &h.Description, &h.WeeklyOff); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Description = strings.TrimSpace(h.Description)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
