package services

import (
	"balneario-backend/models"
	"balneario-backend/store"

	"github.com/google/uuid"
)

// ClientService owns the clients collection. Plain CRUD; the reservation
// and billing services only read from it.
type ClientService struct {
	store store.Store
}

func NewClientService(st store.Store) *ClientService {
	return &ClientService{store: st}
}

func (s *ClientService) List() ([]models.Client, error) {
	return loadRecords[models.Client](s.store, store.Clients)
}

func (s *ClientService) Get(id string) (*models.Client, error) {
	clients, err := loadRecords[models.Client](s.store, store.Clients)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *ClientService) Create(client models.Client) (*models.Client, error) {
	if client.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	client.ID = uuid.New().String()

	clients, err := loadRecords[models.Client](s.store, store.Clients)
	if err != nil {
		return nil, err
	}
	clients = append(clients, client)
	if err := saveRecords(s.store, store.Clients, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(client models.Client) (*models.Client, error) {
	clients, err := loadRecords[models.Client](s.store, store.Clients)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := saveRecords(s.store, store.Clients, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Delete(id string) error {
	clients, err := loadRecords[models.Client](s.store, store.Clients)
	if err != nil {
		return err
	}

	kept := make([]models.Client, 0, len(clients))
	found := false
	for _, c := range clients {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}
	return saveRecords(s.store, store.Clients, kept)
}
