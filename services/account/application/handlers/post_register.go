package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/wardrobe/pkg/auth"
	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/account/application/services"
)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"       example:"ada@example.com"`
	Name     string `json:"name"     validate:"required,min=1,max=255" example:"Ada"`
	Password string `json:"password" validate:"required,min=8,max=72"  example:"hunter2hunter2"`
} // @name RegisterRequest

// UserResponse is returned after successful registration or login.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"      example:"ada@example.com"`
	Name      string    `json:"name"       example:"Ada"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email already registered"`
} // @name ErrorResponse

// PostRegisterHandler handles POST /auth/register requests.
type PostRegisterHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewPostRegisterHandler returns a PostRegisterHandler backed by the given services.
func NewPostRegisterHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc, store: store, log: log}
}

// Execute creates a new account and opens a session for it.
//
//	@Summary		Register account
//	@Description	Creates an account and opens a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	UserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := openSession(w, r, h.store, user.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to open session", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	httpx.JSON(w, http.StatusCreated, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

// openSession writes a fresh session cookie carrying the user id.
func openSession(w http.ResponseWriter, r *http.Request, store sessions.Store, userID uuid.UUID) error {
	session, err := store.Get(r, auth.SessionName)
	if err != nil {
		// A tampered cookie still yields a usable fresh session.
		session, _ = store.New(r, auth.SessionName)
	}
	session.Values[auth.SessionUserIDKey] = userID.String()
	return session.Save(r, w)
}
