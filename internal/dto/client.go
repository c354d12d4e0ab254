package dto

import (
	"time"

	"github.com/aqarerp/backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client record.
// Email accepts empty string as absent.
type CreateClientRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Search string `form:"search"`
}

// ClientResponse defines the data returned for a client, including its
// derived usage counts.
type ClientResponse struct {
	ClientID         string    `json:"clientID"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Address          string    `json:"address"`
	Note             string    `json:"note"`
	ContractCount    int       `json:"contractCount"`
	ProjectCount     int       `json:"projectCount"`
	InstallmentCount int       `json:"installmentCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:         c.ClientID,
		Code:             c.Code,
		Name:             c.Name,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		Note:             c.Note,
		ContractCount:    c.ContractCount,
		ProjectCount:     c.ProjectCount,
		InstallmentCount: c.InstallmentCount,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ToClientResponseList converts a slice of domain.Client to response DTOs.
func ToClientResponseList(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
