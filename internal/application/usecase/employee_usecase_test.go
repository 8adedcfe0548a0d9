package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

type recordingNotifier struct {
	employees []string
	roles     []string
}

func (r *recordingNotifier) NotifyEmployeeAdded(e *entity.Employee, roleName string) {
	r.employees = append(r.employees, e.ID)
	r.roles = append(r.roles, roleName)
}

func newEmployeeTestUseCase() (*EmployeeUseCase, *fakeEmployeeRepo, *fakeRoleRepo, *recordingNotifier) {
	employees := newFakeEmployeeRepo()
	roles := newFakeRoleRepo(newFakePermissionRepo())
	notifier := &recordingNotifier{}
	uc := NewEmployeeUseCase(employees, roles, notifier)
	return uc, employees, roles, notifier
}

func seedRole(roles *fakeRoleRepo, companyID, name string) *entity.Role {
	role := &entity.Role{ID: uuid.New().String(), CompanyID: companyID, Name: name}
	roles.Create(role)
	return role
}

func TestEmployeeCreate(t *testing.T) {
	uc, employees, roles, notifier := newEmployeeTestUseCase()
	companyID := uuid.New().String()
	role := seedRole(roles, companyID, "Vendedor")

	resp, err := uc.Create(companyID, dto.CreateEmployeeRequest{
		Name:     "Juan Pérez",
		Email:    "juan@acme.co",
		RoleID:   role.ID,
		Password: "clave1234",
	})
	require.NoError(t, err)

	assert.Equal(t, companyID, resp.CompanyID)
	require.NotNil(t, resp.Role)
	assert.Equal(t, "Vendedor", resp.Role.Name)

	stored, _ := employees.GetByEmail("juan@acme.co")
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave1234", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave1234")))

	// Se emitió la notificación de alta.
	require.Len(t, notifier.employees, 1)
	assert.Equal(t, stored.ID, notifier.employees[0])
	assert.Equal(t, "Vendedor", notifier.roles[0])
}

func TestEmployeeCreateRoleFromAnotherCompany(t *testing.T) {
	uc, _, roles, notifier := newEmployeeTestUseCase()
	foreignRole := seedRole(roles, uuid.New().String(), "Ajeno")

	_, err := uc.Create(uuid.New().String(), dto.CreateEmployeeRequest{
		Name:     "Juan",
		Email:    "juan@acme.co",
		RoleID:   foreignRole.ID,
		Password: "clave1234",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, notifier.employees)
}

func TestEmployeeCreateDuplicateEmail(t *testing.T) {
	uc, _, roles, _ := newEmployeeTestUseCase()
	companyID := uuid.New().String()
	role := seedRole(roles, companyID, "Vendedor")

	req := dto.CreateEmployeeRequest{Name: "Juan", Email: "juan@acme.co", RoleID: role.ID, Password: "clave1234"}
	_, err := uc.Create(companyID, req)
	require.NoError(t, err)

	_, err = uc.Create(companyID, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestEmployeeUpdateRole(t *testing.T) {
	uc, employees, roles, _ := newEmployeeTestUseCase()
	companyID := uuid.New().String()
	oldRole := seedRole(roles, companyID, "Vendedor")
	newRole := seedRole(roles, companyID, "Supervisor")

	created, err := uc.Create(companyID, dto.CreateEmployeeRequest{
		Name: "Juan", Email: "juan@acme.co", RoleID: oldRole.ID, Password: "clave1234",
	})
	require.NoError(t, err)

	resp, err := uc.UpdateRole(companyID, created.ID, dto.UpdateEmployeeRoleRequest{RoleID: newRole.ID})
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", resp.Role.Name)

	stored, _ := employees.GetByID(created.ID)
	assert.Equal(t, newRole.ID, stored.RoleID)

	// Un rol de otra empresa se rechaza.
	foreign := seedRole(roles, uuid.New().String(), "Ajeno")
	_, err = uc.UpdateRole(companyID, created.ID, dto.UpdateEmployeeRoleRequest{RoleID: foreign.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeScopedToCompany(t *testing.T) {
	uc, _, roles, _ := newEmployeeTestUseCase()
	companyID := uuid.New().String()
	role := seedRole(roles, companyID, "Vendedor")

	created, err := uc.Create(companyID, dto.CreateEmployeeRequest{
		Name: "Juan", Email: "juan@acme.co", RoleID: role.ID, Password: "clave1234",
	})
	require.NoError(t, err)

	otherCompany := uuid.New().String()
	_, err = uc.GetByID(otherCompany, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(otherCompany, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeDelete(t *testing.T) {
	uc, employees, roles, _ := newEmployeeTestUseCase()
	companyID := uuid.New().String()
	role := seedRole(roles, companyID, "Vendedor")

	created, err := uc.Create(companyID, dto.CreateEmployeeRequest{
		Name: "Juan", Email: "juan@acme.co", RoleID: role.ID, Password: "clave1234",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(companyID, created.ID))
	stored, _ := employees.GetByID(created.ID)
	assert.Nil(t, stored)
}
