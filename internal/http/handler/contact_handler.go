package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/parkgate/enterprise-api/internal/domain"
	"github.com/parkgate/enterprise-api/internal/service"
)

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Directory returns the contact directory for one role. An empty or
// unknown type defaults to legal.
func (h *ContactHandler) Directory(w http.ResponseWriter, r *http.Request) {
	role := domain.ContactRole(r.URL.Query().Get("type"))
	if !role.Valid() {
		role = domain.ContactRoleLegal
	}

	entries, err := h.contactService.Directory(r.Context(), role)
	if err != nil {
		h.logger.Error("failed to load contact directory", zap.String("role", string(role)), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to load contacts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"type":     role,
		"contacts": entries,
	})
}

// Create adds a contact to an existing company.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Failed to add contact: %v", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondFailure(w, "Failed to add contact: %v", err)
		return
	}

	if _, err := h.contactService.Create(r.Context(), &req); err != nil {
		respondFailure(w, "Failed to add contact: %v", err)
		return
	}
	respondResult(w, "Contact added successfully", true)
}

// Update edits a contact's name, position, and phone.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondFailure(w, "Failed to update contact: %v", err)
		return
	}

	var req domain.UpdateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondFailure(w, "Failed to update contact: %v", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondFailure(w, "Failed to update contact: %v", err)
		return
	}

	if _, err := h.contactService.Update(r.Context(), id, &req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFailure(w, "Failed to update contact: contact not found")
			return
		}
		respondFailure(w, "Failed to update contact: %v", err)
		return
	}
	respondResult(w, "Contact updated successfully", true)
}

// Delete removes a contact.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondFailure(w, "Failed to delete contact: %v", err)
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFailure(w, "Failed to delete contact: contact not found")
			return
		}
		respondFailure(w, "Failed to delete contact: %v", err)
		return
	}
	respondResult(w, "Contact deleted successfully", true)
}
