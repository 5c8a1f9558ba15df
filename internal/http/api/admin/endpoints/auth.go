package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Tech-LLC/lumen/internal/db"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/api/admin/packets"
	"github.com/Lumen-Tech-LLC/lumen/internal/http/middleware"
	"github.com/Lumen-Tech-LLC/lumen/internal/model"
)

type AuthController struct {
	store  db.Store
	secret string
}

func NewAuthController(store db.Store, secret string) *AuthController {
	return &AuthController{store: store, secret: secret}
}

// AuthModule mounts the public signup/login endpoints.
func AuthModule(store db.Store, secret string) api.Module {
	ctl := NewAuthController(store, secret)
	return api.ModuleFunc(func(c *api.Controller) {
		c.OpenPOST("/auth/signup", ctl.signup)
		c.OpenPOST("/auth/login", ctl.login)
	})
}

// ProfileModule mounts the endpoints that need a valid token.
func ProfileModule(store db.Store) api.Module {
	ctl := NewAuthController(store, "")
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.currentProfile)
		c.PUT("/auth/current_profile", ctl.updateProfile)
	})
}

func (a *AuthController) signup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(userID, a.secret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}

	ctx.JSON(http.StatusCreated, packets.TokenResponse{Token: token})
	return nil, nil
}

func (a *AuthController) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	user, err := a.store.GetUserByEmail(request.Email)
	if err != nil || !middleware.CheckPassword(user.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(user.ID, a.secret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not issue token"}
	}

	return packets.TokenResponse{Token: token}, nil
}

func (a *AuthController) currentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (a *AuthController) updateProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := a.store.UpdateUserProfile(user.ID, request.Email, request.Name); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}

	return gin.H{"message": "updated"}, nil
}
