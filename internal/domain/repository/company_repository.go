package repository

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByEmail(email string) (*entity.Company, error)
	// ExistsByUniqueFields indica si ya hay una empresa con ese email, teléfono o GST.
	ExistsByUniqueFields(email, phone, gst string) (bool, error)
	Update(company *entity.Company) error
}
