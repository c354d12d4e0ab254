package services

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
	"github.com/aqarerp/backend/internal/dto"
)

// AccountSvcFacade enforces the account business rules: unique code, existing
// parent, matching parent type (existence checked before type).
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// ClientSvcFacade enforces the client business rules: unique code first, then
// unique non-empty email (fail-fast, first violation wins).
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
}

// SupplierSvcFacade enforces the supplier business rules: unique code.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, search string) ([]domain.Supplier, error)
}

// EmployeeSvcFacade enforces the employee business rules: unique code.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// PartnerSvcFacade enforces the partner business rules: unique code.
type PartnerSvcFacade interface {
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest) (*domain.Partner, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// InvoiceSvcFacade enforces the invoice business rules: required fields before
// the duplicate check, unique invoiceNo, counterparty resolution by type.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// SettlementSvcFacade enforces the settlement business rules: required fields
// including a non-empty line sequence, unique settlementNo, atomic header+lines
// create, partial update, cascading delete.
type SettlementSvcFacade interface {
	CreateSettlement(ctx context.Context, req dto.CreateSettlementRequest) (*domain.Settlement, error)
	ListSettlements(ctx context.Context) ([]domain.Settlement, error)
	UpdateSettlement(ctx context.Context, settlementID string, req dto.UpdateSettlementRequest) (*domain.Settlement, error)
	DeleteSettlement(ctx context.Context, settlementID string) error
}

// AuditRecorder appends one provenance record per committed mutating operation.
// Recording is best-effort: it runs strictly after the primary write succeeds
// and its own failure is logged, never propagated.
type AuditRecorder interface {
	Record(ctx context.Context, action domain.AuditAction, entity string, entityID string, meta map[string]any)
}
