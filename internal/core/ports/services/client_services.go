package services

import (
	"context"

	"github.com/pocketledger/pocketledger/internal/core/domain"
	"github.com/pocketledger/pocketledger/internal/dto"
)

// ClientSvcFacade manages invoicing clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}
