package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-contacts-app/internal/domain"
	"go-contacts-app/internal/service"
	"go-contacts-app/internal/transport/http/response"
)

type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

func (h *ContactHandler) Mount(g *gin.RouterGroup) {
	g.GET("/contacts", h.List)
	g.POST("/contacts", h.Create)
	g.GET("/contacts/:id", h.Show)
	g.PUT("/contacts/:id", h.Update)
	g.DELETE("/contacts/:id", h.Delete)
	g.POST("/contacts/:id/call", h.Call)
}

// upsertReq is the shared create/update body. The binding tags mirror the
// server contract: presence, shape and length only — country prefixes are the
// client's business.
type upsertReq struct {
	Name        string `json:"name" binding:"required,max=255"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email,max=255"`
}

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	response.Data(c, http.StatusOK, contacts)
}

func (h *ContactHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}
	created, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Data(c, http.StatusCreated, created)
}

func (h *ContactHandler) Show(c *gin.Context) {
	contact, ok := h.resolve(c)
	if !ok {
		return
	}
	response.Data(c, http.StatusOK, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	contact, ok := h.resolve(c)
	if !ok {
		return
	}
	in, ok := h.bind(c)
	if !ok {
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), contact, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, updated)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	contact, ok := h.resolve(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), contact); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContactHandler) Call(c *gin.Context) {
	contact, ok := h.resolve(c)
	if !ok {
		return
	}
	outcome := h.svc.SimulateCall(contact)
	c.JSON(http.StatusOK, gin.H{"message": "Call simulated", "status": string(outcome)})
}

// resolve turns the :id path segment into a Contact before any business logic
// runs; anything unresolvable is a 404.
func (h *ContactHandler) resolve(c *gin.Context) (*domain.Contact, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Contact not found")
		return nil, false
	}
	contact, err := h.svc.Get(c.Request.Context(), uint(id))
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if contact == nil {
		response.Error(c, http.StatusNotFound, "Contact not found")
		return nil, false
	}
	return contact, true
}

func (h *ContactHandler) bind(c *gin.Context) (service.ContactInput, bool) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &verrs):
			response.Validation(c, http.StatusUnprocessableEntity, translateBindingErrors(verrs))
		case errors.As(err, &maxErr):
			response.Error(c, http.StatusRequestEntityTooLarge, "request body too large")
		default:
			response.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		}
		return service.ContactInput{}, false
	}
	return service.ContactInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}, true
}

func (h *ContactHandler) fail(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Validation(c, http.StatusUnprocessableEntity, verr)
	case errors.Is(err, domain.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Contact not found")
	case errors.Is(err, domain.ErrDuplicatePhoneNumber),
		errors.Is(err, domain.ErrDuplicateEmail):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		h.log.Error("contact request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

func translateBindingErrors(verrs validator.ValidationErrors) *domain.ValidationError {
	out := domain.NewValidationError()
	for _, fe := range verrs {
		var field, msg string
		switch fe.Field() {
		case "Name":
			field = "name"
		case "PhoneNumber":
			field = "phone_number"
		case "Email":
			field = "email"
		default:
			field = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			msg = "The " + field + " field is required."
		case "max":
			msg = "The " + field + " field must not be greater than " + fe.Param() + " characters."
		case "email":
			msg = "The " + field + " field must be a valid email address."
		default:
			msg = "The " + field + " field is invalid."
		}
		out.Add(field, msg)
	}
	return out
}
