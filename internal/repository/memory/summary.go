package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/summary"
)

type SummaryRepository struct {
	mu        sync.Mutex
	summaries []summary.MonthlySummary
}

func NewSummaryRepository() *SummaryRepository {
	return &SummaryRepository{}
}

func (r *SummaryRepository) Create(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.summaries {
		if existing.EmployeeID == s.EmployeeID && existing.Year == s.Year && existing.Month == s.Month {
			return summary.MonthlySummary{}, summary.ErrDuplicateSummary
		}
	}
	s.ID = newID()
	s.CreatedAt = time.Now()
	r.summaries = append(r.summaries, s)
	return s, nil
}

func (r *SummaryRepository) Exists(ctx context.Context, employeeID string, year, month int) (bool, error) {
	_, err := r.GetByPeriod(ctx, employeeID, year, month)
	if err == summary.ErrSummaryNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *SummaryRepository) GetByPeriod(ctx context.Context, employeeID string, year, month int) (summary.MonthlySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.summaries {
		if s.EmployeeID == employeeID && s.Year == year && s.Month == month {
			return s, nil
		}
	}
	return summary.MonthlySummary{}, summary.ErrSummaryNotFound
}

func (r *SummaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]summary.MonthlySummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []summary.MonthlySummary
	for _, s := range r.summaries {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}
