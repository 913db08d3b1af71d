package dto

import (
	"github.com/pocketledger/pocketledger/internal/core/domain"
)

// CreateClientRequest defines the data needed to create an invoicing client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest covers the editable client fields.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ClientResponse mirrors domain.Client.
type ClientResponse struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID: c.ClientID,
		Name:     c.Name,
		Email:    c.Email,
		Company:  c.Company,
		Phone:    c.Phone,
		Address:  c.Address,
	}
}

// ToClientResponses converts a slice of clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
