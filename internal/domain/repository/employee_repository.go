package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	GetByIDAndCompany(id, companyID string) (*entity.Employee, error)
	ListByCompany(companyID string) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	// CountByRole devuelve cuántos empleados referencian el rol (guard de borrado).
	CountByRole(roleID string) (int, error)
}
