package controllers

import (
	"net/http"

	"quickbites/app/services"
	"quickbites/pkg/auth"
	"quickbites/pkg/bind"
	"quickbites/pkg/logger"
	"quickbites/pkg/middleware"
	"quickbites/pkg/response"
)

type AuthController struct {
	accounts *services.AccountService
}

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{accounts: accounts}
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,max=255"`
	Phone    string `json:"phone"    validate:"nullable,max=50"`
	Address  string `json:"address"  validate:"nullable,max=255"`
}

// Register creates an account and issues a token for it.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, err := c.accounts.Register(services.RegisterInput{
		Email:    body.Email,
		Password: body.Password,
		Name:     body.Name,
		Phone:    body.Phone,
		Address:  body.Address,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "user_id", userID)
	response.Created(w, map[string]interface{}{
		"access_token": token,
		"user": map[string]interface{}{
			"id":    userID,
			"email": body.Email,
			"name":  body.Name,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, err := c.accounts.Authenticate(body.Email, body.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	user, err := c.accounts.Profile(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"access_token": token,
		"user": map[string]interface{}{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Profile returns the authenticated user's account data.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := c.accounts.Profile(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{"user": user})
}

type updateProfileRequest struct {
	Name    *string `json:"name"    validate:"max=255"`
	Phone   *string `json:"phone"   validate:"max=50"`
	Address *string `json:"address" validate:"max=255"`
}

// UpdateProfile applies a partial profile update. Fields omitted from the
// body are left unchanged.
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var body updateProfileRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	err := c.accounts.UpdateProfile(userID, services.UpdateProfileInput{
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{"message": "Profile updated"})
}
