package handler

import (
	"github.com/labstack/echo/v4"

	"nanocart/internal/usecase"
	"nanocart/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type phoneRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
}

type otpRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	OTP         string `json:"otp" validate:"required"`
}

func setBearer(c echo.Context, token string) {
	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+token)
}

func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req phoneRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.SendOTP(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "OTP sent successfully", result)
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req otpRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.OTP); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "OTP verified successfully", nil)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req usecase.SignupInput
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Signup(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	setBearer(c, result.Token)
	return response.Success(c, "User registered successfully", result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req otpRequest
	if err := bind(c, &req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		return response.Error(c, err)
	}

	setBearer(c, result.Token)
	return response.Success(c, "Login successful", result)
}
