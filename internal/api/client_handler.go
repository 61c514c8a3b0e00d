package api

import (
	"carelog/health-info-app/internal/domain"
	"carelog/health-info-app/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler holds the client service dependency.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- DTOs ---

// AddressPayload mirrors domain.Address on the wire.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// RegisterClientRequest defines the expected JSON for registering a
// client. Dates are RFC 3339. Required-field validation lives in the
// service so the error messages stay uniform.
type RegisterClientRequest struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Gender         string          `json:"gender"`
	DateOfBirth    time.Time       `json:"dateOfBirth"`
	PhoneNumber    string          `json:"phoneNumber"`
	Address        *AddressPayload `json:"address"`
	MedicalHistory string          `json:"medicalHistory"`
}

// UpdateClientRequest is a partial update: omitted fields keep their
// stored value.
type UpdateClientRequest struct {
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Gender         string          `json:"gender"`
	DateOfBirth    time.Time       `json:"dateOfBirth"`
	PhoneNumber    string          `json:"phoneNumber"`
	Address        *AddressPayload `json:"address"`
	MedicalHistory string          `json:"medicalHistory"`
}

// ClientResponse is the DTO for returning client details.
type ClientResponse struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Gender         string          `json:"gender"`
	DateOfBirth    time.Time       `json:"dateOfBirth"`
	PhoneNumber    string          `json:"phoneNumber"`
	Address        *AddressPayload `json:"address,omitempty"`
	MedicalHistory string          `json:"medicalHistory,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func addressToDomain(a *AddressPayload) *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

func addressToPayload(a *domain.Address) *AddressPayload {
	if a == nil {
		return nil
	}
	return &AddressPayload{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
}

// MapClientToResponse converts a domain.Client to its response DTO.
func MapClientToResponse(client *domain.Client) ClientResponse {
	if client == nil {
		return ClientResponse{}
	}
	return ClientResponse{
		ID:             client.ID.Hex(),
		FirstName:      client.FirstName,
		LastName:       client.LastName,
		Gender:         string(client.Gender),
		DateOfBirth:    client.DateOfBirth,
		PhoneNumber:    client.PhoneNumber,
		Address:        addressToPayload(client.Address),
		MedicalHistory: client.MedicalHistory,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}
}

// MapClientsToResponse converts a slice of clients.
func MapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = MapClientToResponse(&clients[i])
	}
	return responses
}

// --- Handler Methods ---

// RegisterClient handles POST /api/clients.
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.Register(c.Request.Context(), service.RegisterClientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         domain.Gender(req.Gender),
		DateOfBirth:    req.DateOfBirth,
		PhoneNumber:    req.PhoneNumber,
		Address:        addressToDomain(req.Address),
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapClientToResponse(client))
}

// GetClients handles GET /api/clients.
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// SearchClients handles GET /api/clients/search?query=. An empty query
// behaves like the plain listing.
func (h *ClientHandler) SearchClients(c *gin.Context) {
	clients, err := h.clientService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapClientsToResponse(clients))
}

// GetClientByID handles GET /api/clients/:id. A malformed id behaves
// like a well-formed absent one: 404.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrClientNotFound.Error())
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// UpdateClient handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrClientNotFound.Error())
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), id, service.UpdateClientInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Gender:         domain.Gender(req.Gender),
		DateOfBirth:    req.DateOfBirth,
		PhoneNumber:    req.PhoneNumber,
		Address:        addressToDomain(req.Address),
		MedicalHistory: req.MedicalHistory,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapClientToResponse(client))
}

// DeleteClient handles DELETE /api/clients/:id. Enrollments referencing
// the client are not cascaded.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, service.ErrClientNotFound.Error())
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client removed"})
}
