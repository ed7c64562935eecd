package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deviceTaken(newEmployee) {
		return employee.Employee{}, employee.ErrDeviceAlreadyRegistered
	}
	if newEmployee.ID == "" {
		newEmployee.ID = newID()
	}
	now := time.Now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[e.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	if r.deviceTaken(e) {
		return employee.ErrDeviceAlreadyRegistered
	}
	e.UpdatedAt = time.Now()
	r.employees[e.ID] = e
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	r.mu.Lock()
	var matched []employee.Employee
	for _, e := range r.employees {
		if e.IsDeleted() != filter.Deleted {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, e)
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].FullName < matched[j].FullName })
	total := int64(len(matched))

	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *EmployeeRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for id, e := range r.employees {
		if !e.IsDeleted() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *EmployeeRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok || e.IsDeleted() {
		return employee.ErrEmployeeNotFound
	}
	now := time.Now()
	e.DeletedAt = &now
	r.employees[id] = e
	return nil
}

func (r *EmployeeRepository) Restore(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok || !e.IsDeleted() {
		return employee.ErrEmployeeNotFound
	}
	e.DeletedAt = nil
	r.employees[id] = e
	return nil
}

// deviceTaken reports whether another active employee registered one of e's MACs.
func (r *EmployeeRepository) deviceTaken(e employee.Employee) bool {
	for id, other := range r.employees {
		if id == e.ID || other.IsDeleted() {
			continue
		}
		if (e.MobileMacAddress != "" && e.MobileMacAddress == other.MobileMacAddress) ||
			(e.LaptopMacAddress != "" && e.LaptopMacAddress == other.LaptopMacAddress) {
			return true
		}
	}
	return false
}
