package pgsql

import (
	portsrepo "github.com/aqarerp/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		ClientRepo:     newPgxClientRepository(dbPool),
		SupplierRepo:   newPgxSupplierRepository(dbPool),
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
		PartnerRepo:    newPgxPartnerRepository(dbPool),
		InvoiceRepo:    newPgxInvoiceRepository(dbPool),
		SettlementRepo: newPgxSettlementRepository(dbPool),
		AuditLogRepo:   newPgxAuditLogRepository(dbPool),
	}
}
