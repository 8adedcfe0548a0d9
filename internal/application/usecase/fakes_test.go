package usecase

import (
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

type fakeEmployeeRepo struct {
	byID    map[string]*entity.Employee
	byEmail map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*entity.Employee{}, byEmail: map[string]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) add(e *entity.Employee) {
	f.byID[e.ID] = e
	f.byEmail[e.Email] = e
}

func (f *fakeEmployeeRepo) Create(e *entity.Employee) error { f.add(e); return nil }
func (f *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return f.byID[id], nil
}
func (f *fakeEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	return f.byEmail[email], nil
}
func (f *fakeEmployeeRepo) GetByIDAndCompany(id, companyID string) (*entity.Employee, error) {
	e := f.byID[id]
	if e == nil || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}
func (f *fakeEmployeeRepo) ListByCompany(companyID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.byID {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) Update(e *entity.Employee) error { f.add(e); return nil }
func (f *fakeEmployeeRepo) Delete(id string) error {
	if e := f.byID[id]; e != nil {
		delete(f.byEmail, e.Email)
	}
	delete(f.byID, id)
	return nil
}
func (f *fakeEmployeeRepo) CountByRole(roleID string) (int, error) {
	n := 0
	for _, e := range f.byID {
		if e.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

type fakeRoleRepo struct {
	byID        map[string]*entity.Role
	permissions map[string][]string // roleID -> permissionIDs asignados
	catalog     *fakePermissionRepo
}

func newFakeRoleRepo(catalog *fakePermissionRepo) *fakeRoleRepo {
	return &fakeRoleRepo{byID: map[string]*entity.Role{}, permissions: map[string][]string{}, catalog: catalog}
}

func (f *fakeRoleRepo) materialize(r *entity.Role) *entity.Role {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Permissions = nil
	for _, id := range f.permissions[r.ID] {
		if p := f.catalog.byID[id]; p != nil {
			cp.Permissions = append(cp.Permissions, *p)
		}
	}
	return &cp
}

func (f *fakeRoleRepo) Create(r *entity.Role) error { f.byID[r.ID] = r; return nil }
func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return f.materialize(f.byID[id]), nil
}
func (f *fakeRoleRepo) GetByIDAndCompany(id, companyID string) (*entity.Role, error) {
	r := f.byID[id]
	if r == nil || r.CompanyID != companyID {
		return nil, nil
	}
	return f.materialize(r), nil
}
func (f *fakeRoleRepo) ListByCompany(companyID string) ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.byID {
		if r.CompanyID == companyID {
			out = append(out, f.materialize(r))
		}
	}
	return out, nil
}
func (f *fakeRoleRepo) Update(r *entity.Role) error {
	if _, ok := f.byID[r.ID]; !ok {
		return nil
	}
	f.byID[r.ID] = r
	return nil
}
func (f *fakeRoleRepo) Delete(id string) error {
	delete(f.byID, id)
	delete(f.permissions, id)
	return nil
}
func (f *fakeRoleRepo) SetPermissions(roleID string, permissionIDs []string) error {
	f.permissions[roleID] = append([]string(nil), permissionIDs...)
	return nil
}
func (f *fakeRoleRepo) GetPermissions(roleID string) ([]entity.Permission, error) {
	r := f.materialize(f.byID[roleID])
	if r == nil {
		return nil, nil
	}
	return r.Permissions, nil
}
func (f *fakeRoleRepo) GetPermissionNames(roleID string) ([]string, error) {
	r := f.materialize(f.byID[roleID])
	if r == nil {
		return nil, nil
	}
	return r.PermissionNames(), nil
}

type fakePermissionRepo struct {
	byID map[string]*entity.Permission
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{byID: map[string]*entity.Permission{}}
}

func (f *fakePermissionRepo) Count() (int, error) { return len(f.byID), nil }
func (f *fakePermissionRepo) CreateMany(permissions []entity.Permission) error {
	for i := range permissions {
		p := permissions[i]
		f.byID[p.ID] = &p
	}
	return nil
}
func (f *fakePermissionRepo) ListAll() ([]entity.Permission, error) {
	out := make([]entity.Permission, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}
func (f *fakePermissionRepo) CountByIDs(ids []string) (int, error) {
	seen := map[string]struct{}{}
	for _, id := range ids {
		if _, ok := f.byID[id]; ok {
			seen[id] = struct{}{}
		}
	}
	return len(seen), nil
}

// fakeRoleTxRunner pasa el mismo repo: los tests verifican la secuencia de
// llamadas, no el aislamiento transaccional.
type fakeRoleTxRunner struct {
	repo   repository.RoleRepository
	failOn error
	calls  int
}

func (f *fakeRoleTxRunner) RunRole(fn func(roleRepo repository.RoleRepository) error) error {
	f.calls++
	if f.failOn != nil {
		return f.failOn
	}
	return fn(f.repo)
}
