package services

import (
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	portssvc "github.com/aqarerp/backend/internal/core/ports/services"
	"github.com/aqarerp/backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit recorder is shared by every service that mutates state.
	audit := NewAuditService(repos.AuditLogRepo)

	container.Account = NewAccountService(repos.AccountRepo, audit)
	container.Client = NewClientService(repos.ClientRepo, audit)
	container.Supplier = NewSupplierService(repos.SupplierRepo, audit)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, audit)
	container.Partner = NewPartnerService(repos.PartnerRepo, audit)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, audit)
	container.Settlement = NewSettlementService(repos.SettlementRepo, audit, cfg.EnforceSettlementTotal)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade    = (*AccountService)(nil)
	_ portssvc.ClientSvcFacade     = (*ClientService)(nil)
	_ portssvc.SupplierSvcFacade   = (*SupplierService)(nil)
	_ portssvc.EmployeeSvcFacade   = (*EmployeeService)(nil)
	_ portssvc.PartnerSvcFacade    = (*PartnerService)(nil)
	_ portssvc.InvoiceSvcFacade    = (*InvoiceService)(nil)
	_ portssvc.SettlementSvcFacade = (*SettlementService)(nil)
)
