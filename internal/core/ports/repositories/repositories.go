package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo    AccountRepository
	ClientRepo     ClientRepository
	SupplierRepo   SupplierRepository
	EmployeeRepo   EmployeeRepository
	PartnerRepo    PartnerRepository
	InvoiceRepo    InvoiceRepository
	SettlementRepo SettlementRepository
	AuditLogRepo   AuditLogRepository
}
