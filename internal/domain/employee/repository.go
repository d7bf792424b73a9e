package employee

import "context"

// EmployeeRepository defines data access for the employee roster.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, error)

	// Update applies a partial update resolved field-by-field against a
	// fixed column set; nil fields are left untouched.
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	Delete(ctx context.Context, id string) error
}
