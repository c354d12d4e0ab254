package repositories

import (
	"context"

	"github.com/aqarerp/backend/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByCode(ctx context.Context, code string) (*domain.Client, error)
	// FindClientByEmail matches a non-empty email exactly.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)
	// ListClients returns clients newest first, with usage counts. A non-empty
	// search filters by name, code or phone, case-insensitive.
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
}

// SupplierRepository defines persistence operations for supplier records.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByCode(ctx context.Context, code string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, search string) ([]domain.Supplier, error)
}

// PartnerRepository defines persistence operations for settlement partners.
type PartnerRepository interface {
	SavePartner(ctx context.Context, partner domain.Partner) error
	FindPartnerByCode(ctx context.Context, code string) (*domain.Partner, error)
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}
