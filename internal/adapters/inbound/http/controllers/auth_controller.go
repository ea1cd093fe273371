package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type AuthController struct {
	registerUseCase portsin.RegisterUserUseCase
	loginUseCase    portsin.LoginUserUseCase
	logger          *log.Logger
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthController(
	registerUseCase portsin.RegisterUserUseCase,
	loginUseCase portsin.LoginUserUseCase,
	logger *log.Logger,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logger:          logger,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	payload := registerPayload{}
	if appErr := decodeSingleObject(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	resource, appErr := c.registerUseCase.Execute(r.Context(), dto.RegisterUserCommand{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/auth/register method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, resource)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	payload := loginPayload{}
	if appErr := decodeSingleObject(r.Body, &payload); appErr != nil {
		writeAppError(w, appErr)
		return
	}

	output, appErr := c.loginUseCase.Execute(r.Context(), dto.LoginUserCommand{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/auth/login method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func decodeSingleObject(body io.Reader, target any) *apperrors.AppError {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	return nil
}
