package identity

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stay-haven/stay_haven/internal/notification"
)

const dateLayout = "2006-01-02"

// Handler exposes the register and login endpoints.
type Handler struct {
	service  *Service
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewHandler constructs an identity HTTP handler. The notifier may be nil.
func NewHandler(service *Service, notifier notification.Notifier, logger *slog.Logger) *Handler {
	return &Handler{service: service, notifier: notifier, logger: logger}
}

type registerRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type authResponse struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Token     string `json:"token,omitempty"`
}

// Register handles POST /api/register.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.FullName == "" {
		return fiber.NewError(http.StatusBadRequest, "fullName is required")
	}
	if !validPhone(req.Phone) {
		return fiber.NewError(http.StatusBadRequest, "phone must be exactly 10 digits")
	}
	if req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "password is required")
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "dateOfBirth must be YYYY-MM-DD")
		}
		dob = &parsed
	}

	session, err := h.service.Register(c.UserContext(), RegisterInput{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Password:    req.Password,
		DateOfBirth: dob,
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Existing identity's public fields, no token; the client decides
			// whether to redirect to login.
			return c.Status(http.StatusBadRequest).JSON(toResponse("User already exists", session))
		}
		if errors.Is(err, ErrValidation) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("registration failed", "phone", req.Phone, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}

	h.logger.Info("user registered", "user_id", session.User.ID, "phone", session.User.Phone)

	if h.notifier != nil {
		// Best effort; registration already succeeded.
		if err := h.notifier.Send(c.UserContext(), notification.Message{
			Kind:        notification.KindWelcome,
			Destination: session.User.Phone,
			Body:        "Welcome to StayHaven, " + session.User.FirstName,
		}); err != nil {
			h.logger.Warn("welcome notification failed", "user_id", session.User.ID, "error", err)
		}
	}

	return c.Status(http.StatusCreated).JSON(toResponse("User registered successfully", session))
}

// Login handles POST /api/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if req.Phone == "" {
		return fiber.NewError(http.StatusBadRequest, "phone is required")
	}
	if req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "password is required")
	}

	session, err := h.service.Login(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		h.logger.Error("login failed", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "internal server error")
	}

	return c.Status(http.StatusOK).JSON(toResponse("Login successful", session))
}

func toResponse(message string, session Session) authResponse {
	return authResponse{
		Message:   message,
		UserID:    session.User.ID,
		FullName:  session.User.DisplayName(),
		FirstName: session.User.FirstName,
		LastName:  session.User.LastName,
		Phone:     session.User.Phone,
		Token:     session.Token,
	}
}

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
