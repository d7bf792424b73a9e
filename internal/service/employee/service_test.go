package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly-hr/staffly-backend-go/internal/domain/employee"
	"github.com/staffly-hr/staffly-backend-go/internal/domain/payroll"
)

// ========== FAKES ==========

type fakeTxManager struct{}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	f.nextID++
	emp.ID = fmt.Sprintf("e%d", f.nextID)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.DeletedAt != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.EmploymentStatus == employee.EmploymentStatusActive && emp.DeletedAt == nil {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.Filter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.DeletedAt != nil {
			continue
		}
		if filter.Department != nil && emp.Department != *filter.Department {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := f.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.EmploymentStatus != nil {
		emp.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}
	f.employees[req.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	now := time.Now().UTC()
	emp.DeletedAt = &now
	f.employees[id] = emp
	return nil
}

type fakeSalaryRepo struct {
	structures map[string]payroll.SalaryStructure
}

func (f *fakeSalaryRepo) GetByEmployeeID(_ context.Context, employeeID string) (payroll.SalaryStructure, error) {
	s, ok := f.structures[employeeID]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrMissingSalaryStructure
	}
	return s, nil
}

func (f *fakeSalaryRepo) Upsert(_ context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	f.structures[structure.EmployeeID] = structure
	return structure, nil
}

func newFixture() (employee.EmployeeService, *fakeEmployeeRepo, *fakeSalaryRepo) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	salaryRepo := &fakeSalaryRepo{structures: map[string]payroll.SalaryStructure{}}
	return NewEmployeeService(&fakeTxManager{}, employeeRepo, salaryRepo), employeeRepo, salaryRepo
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-001",
		FullName:     "Ada Example",
		Email:        "ada@example.com",
		Department:   "Engineering",
		Position:     "Software Engineer",
		JoinDate:     "2025-01-15",
	}
}

// ========== TESTS ==========

func TestCreateSeedsSalaryStructure(t *testing.T) {
	svc, _, salaryRepo := newFixture()

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "active", resp.EmploymentStatus)

	structure, ok := salaryRepo.structures[resp.ID]
	require.True(t, ok, "salary structure must be seeded at onboarding")
	assert.True(t, structure.BasicSalary.Equal(decimal.NewFromInt(60000)))
	assert.True(t, structure.HousingAllowance.Equal(decimal.NewFromInt(15000)))
	assert.True(t, structure.OtherAllowances.Equal(decimal.NewFromInt(5000)))
	assert.True(t, structure.ProvidentFund.Equal(decimal.NewFromInt(3000)))
}

func TestCreateUnknownPairGetsGenericDefaults(t *testing.T) {
	svc, _, salaryRepo := newFixture()

	req := createRequest()
	req.Department = "Research"
	req.Position = "Archivist"

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	structure, ok := salaryRepo.structures[resp.ID]
	require.True(t, ok)
	assert.True(t, structure.BasicSalary.Equal(decimal.NewFromInt(35000)))
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newFixture()

	req := createRequest()
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	assert.Error(t, err)

	req = createRequest()
	req.JoinDate = "15/01/2025"
	_, err = svc.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateDuplicateCode(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Email = "other@example.com"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestUpdateMoveSeedsStructureWhenMissing(t *testing.T) {
	svc, _, salaryRepo := newFixture()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	// Simulate an employee whose structure was never configured.
	delete(salaryRepo.structures, created.ID)

	department := "Finance"
	position := "Accountant"
	updated, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Department: &department,
		Position:   &position,
	})
	require.NoError(t, err)
	assert.Equal(t, "Finance", updated.Department)

	structure, ok := salaryRepo.structures[created.ID]
	require.True(t, ok)
	assert.True(t, structure.BasicSalary.Equal(decimal.NewFromInt(50000)))
}

func TestUpdateMoveKeepsExistingStructure(t *testing.T) {
	svc, _, salaryRepo := newFixture()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	// Admin-tuned amounts must survive a transfer.
	custom := salaryRepo.structures[created.ID]
	custom.BasicSalary = decimal.NewFromInt(72000)
	salaryRepo.structures[created.ID] = custom

	department := "Finance"
	_, err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:         created.ID,
		Department: &department,
	})
	require.NoError(t, err)

	assert.True(t, salaryRepo.structures[created.ID].BasicSalary.Equal(decimal.NewFromInt(72000)))
}

func TestDeleteIsSoft(t *testing.T) {
	svc, employeeRepo, _ := newFixture()

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// The row still exists underneath.
	stored, ok := employeeRepo.employees[created.ID]
	require.True(t, ok)
	assert.NotNil(t, stored.DeletedAt)
}

func TestDeleteUnknown(t *testing.T) {
	svc, _, _ := newFixture()
	err := svc.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
