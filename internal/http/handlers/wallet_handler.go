package handlers

import (
	"github.com/degen-api/backend/internal/apperrors"
	"github.com/degen-api/backend/internal/http/dto"
	"github.com/degen-api/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WalletHandler struct {
	walletService *services.WalletService
	log           *zap.Logger
}

func NewWalletHandler(walletService *services.WalletService, log *zap.Logger) *WalletHandler {
	return &WalletHandler{walletService: walletService, log: log}
}

// CreateWallet registers a new wallet.
// POST /wallets
func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var req dto.CreateWalletRequest
	if err := c.BodyParser(&req); err != nil {
		return h.respondError(c, apperrors.BadRequest("invalid request body"))
	}

	wallet, aerr := h.walletService.CreateWallet(c.Context(), req.Address, req.Name)
	if aerr != nil {
		return h.respondError(c, aerr)
	}

	return c.JSON(wallet)
}

// GetWallet returns a wallet by id.
// GET /wallets/:id
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.respondError(c, apperrors.BadRequest("invalid wallet id"))
	}

	wallet, aerr := h.walletService.GetWallet(c.Context(), id)
	if aerr != nil {
		return h.respondError(c, aerr)
	}

	return c.JSON(wallet)
}

// ListWallets returns one page of wallets, newest first. Malformed or
// out-of-range page/per_page values are clamped, not rejected.
// GET /wallets?page=&per_page=
func (h *WalletHandler) ListWallets(c *fiber.Ctx) error {
	page := c.QueryInt("page", services.DefaultPage)
	perPage := c.QueryInt("per_page", services.DefaultPerPage)

	result, aerr := h.walletService.ListWallets(c.Context(), page, perPage)
	if aerr != nil {
		return h.respondError(c, aerr)
	}

	return c.JSON(result)
}

// respondError renders a domain error as {error, code, details?}. Server
// errors are logged with their code and status before rendering; 4xx
// outcomes are expected client input and are not logged as failures.
func (h *WalletHandler) respondError(c *fiber.Ctx, aerr *apperrors.Error) error {
	if aerr.IsServerError() {
		h.log.Error("request failed with server error",
			zap.String("error_code", aerr.Code()),
			zap.Int("status", aerr.Status()),
			zap.String("error", aerr.Message),
			zap.NamedError("cause", aerr.Cause()),
		)
	}

	return c.Status(aerr.Status()).JSON(dto.ErrorResponse{
		Error:   aerr.Message,
		Code:    aerr.Code(),
		Details: aerr.Details,
	})
}
