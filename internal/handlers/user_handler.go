package handlers

import (
	"time"

	"ecomm/internal/models"
	"ecomm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for accounts: signup/login plus the self
// and admin user operations.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
	cookieName  string
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService, cookieName string) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
		cookieName:  cookieName,
	}
}

// RegisterRoutes registers the user routes. Signup and login stay public;
// auth and admin run per route so they never leak onto the public paths.
func (h *UserHandler) RegisterRoutes(api fiber.Router, auth, admin fiber.Handler) {
	api.Post("/signup", h.HandleSignup)
	api.Post("/login", h.HandleLogin)

	api.Patch("/updateDetails", auth, h.HandleUpdateDetails)
	api.Get("/getSelf", auth, h.HandleGetSelf)

	api.Delete("/deleteUser/:id", auth, admin, h.HandleDeleteUser)
	api.Get("/getUserDetail/:id", auth, admin, h.HandleGetUserDetail)
	api.Get("/getAllUsers", auth, admin, h.HandleGetAllUsers)
	api.Get("/getUserStats", auth, admin, h.HandleGetUserStats)
}

// SignupRequest is the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleSignup registers a new user and issues the cookie token.
func (h *UserHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.Register(c.UserContext(), user); err != nil {
		return fail(c, err)
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return fail(c, err)
	}
	return h.sendToken(c, fiber.StatusCreated, user, token)
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates by email and issues the cookie token.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user, token, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return h.sendToken(c, fiber.StatusOK, user, token)
}

// UpdateDetailsRequest is the request body for updating the caller's details.
type UpdateDetailsRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// HandleUpdateDetails patches the caller's username and/or email.
func (h *UserHandler) HandleUpdateDetails(c *fiber.Ctx) error {
	var req UpdateDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return failValidation(c, err)
	}

	user, err := h.userService.UpdateDetails(c.UserContext(), callerID(c), req.Username, req.Email)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// HandleGetSelf returns the caller's own account.
func (h *UserHandler) HandleGetSelf(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.UserContext(), callerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// HandleDeleteUser removes any user by ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	if err := h.userService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User successfully deleted",
	})
}

// HandleGetUserDetail returns any user by ID.
func (h *UserHandler) HandleGetUserDetail(c *fiber.Ctx) error {
	user, err := h.userService.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// HandleGetAllUsers lists users; ?new returns only the five newest.
func (h *UserHandler) HandleGetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAll(c.UserContext(), c.Query("new") != "")
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"users":   users,
	})
}

// HandleGetUserStats returns signups per calendar month over the last year.
func (h *UserHandler) HandleGetUserStats(c *fiber.Ctx) error {
	stats, err := h.userService.SignupStats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "keys are month numbers",
		"stats":   stats,
	})
}

// sendToken sets the JWT cookie and returns the token alongside the user.
func (h *UserHandler) sendToken(c *fiber.Ctx, status int, user *models.User, token string) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(72 * time.Hour),
		HTTPOnly: true,
	})
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}
