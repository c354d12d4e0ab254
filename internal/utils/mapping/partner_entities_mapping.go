package mapping

import (
	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID: d.ClientID,
		Code:     d.Code,
		Name:     d.Name,
		Phone:    d.Phone,
		Email:    d.Email,
		Address:  d.Address,
		Note:     d.Note,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:         m.ClientID,
		Code:             m.Code,
		Name:             m.Name,
		Phone:            m.Phone,
		Email:            m.Email,
		Address:          m.Address,
		Note:             m.Note,
		ContractCount:    m.ContractCount,
		ProjectCount:     m.ProjectCount,
		InstallmentCount: m.InstallmentCount,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID: d.SupplierID,
		Code:       d.Code,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		Address:    d.Address,
		Note:       d.Note,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:   m.SupplierID,
		Code:         m.Code,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Note:         m.Note,
		InvoiceCount: m.InvoiceCount,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

// ToModelPartner converts a domain Partner to a model Partner
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID: d.PartnerID,
		Code:      d.Code,
		Name:      d.Name,
		Phone:     d.Phone,
		Note:      d.Note,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID: m.PartnerID,
		Code:      m.Code,
		Name:      m.Name,
		Phone:     m.Phone,
		Note:      m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainPartnerSlice converts a slice of model Partners to domain Partners
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	ds := make([]domain.Partner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartner(m)
	}
	return ds
}
