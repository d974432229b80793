package services

import (
	"context"
	"strings"
	"time"

	"github.com/degen-api/backend/internal/apperrors"
	"github.com/degen-api/backend/internal/models"
	"github.com/degen-api/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"
)

const (
	// MaxAddressLen is the longest accepted wallet address. Base58-encoded
	// 32-byte public keys never exceed 44 characters.
	MaxAddressLen = 44

	DefaultPage    = 1
	DefaultPerPage = 50
	MaxPerPage     = 100
)

type WalletService struct {
	walletRepo *repositories.WalletRepo
	log        *zap.Logger
}

func NewWalletService(walletRepo *repositories.WalletRepo, log *zap.Logger) *WalletService {
	return &WalletService{walletRepo: walletRepo, log: log}
}

// ValidateAddress trims surrounding whitespace and checks that the result is
// non-empty, within length bounds, and decodes as base58. This is a
// format-level check only: no checksum or chain-specific structure is
// verified. The trimmed address is returned unchanged on success.
func ValidateAddress(raw string) (string, *apperrors.Error) {
	address := strings.TrimSpace(raw)

	if address == "" {
		return "", apperrors.Unprocessable("Wallet address cannot be empty")
	}
	if len(address) > MaxAddressLen {
		return "", apperrors.Unprocessable("Invalid wallet address length")
	}
	if _, err := base58.Decode(address); err != nil {
		return "", apperrors.Unprocessable("Invalid wallet address format")
	}

	return address, nil
}

func (s *WalletService) CreateWallet(ctx context.Context, address string, name *string) (*models.Wallet, *apperrors.Error) {
	addr, verr := ValidateAddress(address)
	if verr != nil {
		return nil, verr
	}

	exists, err := s.walletRepo.ExistsByAddress(ctx, addr)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	if exists {
		return nil, apperrors.Conflict("Wallet with this address already exists")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Internal("failed to generate wallet id", err)
	}

	now := time.Now().UTC()
	wallet := &models.Wallet{
		ID:        id,
		Address:   addr,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		// A concurrent create can slip past the pre-check; the unique
		// constraint is the authoritative conflict signal.
		serr := apperrors.FromStorage(err)
		if serr.Kind == apperrors.KindConflict {
			return nil, apperrors.Conflict("Wallet with this address already exists")
		}
		return nil, serr
	}

	s.log.Info("wallet created",
		zap.String("wallet_id", id.String()),
		zap.String("address", addr),
	)

	return wallet, nil
}

func (s *WalletService) GetWallet(ctx context.Context, id uuid.UUID) (*models.Wallet, *apperrors.Error) {
	wallet, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		serr := apperrors.FromStorage(err)
		if serr.Kind == apperrors.KindNotFound {
			return nil, apperrors.NotFoundf("Wallet with ID %s not found", id)
		}
		return nil, serr
	}
	return wallet, nil
}

// WalletPage is one window of the wallet listing, newest first.
type WalletPage struct {
	Items      []models.Wallet `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

func (s *WalletService) ListWallets(ctx context.Context, page, perPage int) (*WalletPage, *apperrors.Error) {
	page, perPage = clampPagination(page, perPage)
	offset := (page - 1) * perPage

	total, err := s.walletRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	items, err := s.walletRepo.List(ctx, perPage, offset)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	if items == nil {
		items = []models.Wallet{}
	}

	return &WalletPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// clampPagination raises page to at least 1 and forces perPage into
// [1, MaxPerPage]. Out-of-range values are clamped, never rejected; a page
// past the end of the data simply yields an empty item set.
func clampPagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func totalPages(total, perPage int) int {
	if total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
