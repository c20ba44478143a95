package usecase

import (
	"context"
	"sort"
	"time"

	"nanocart/internal/domain/entity"
	"nanocart/internal/domain/repository"
	"nanocart/pkg/errors"
	"nanocart/pkg/logger"
)

type FundsInput struct {
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	Description string `json:"description"`
}

type TransactionLogEntry struct {
	Date        time.Time              `json:"date"`
	Type        entity.TransactionType `json:"type"`
	OrderID     string                 `json:"orderId,omitempty"`
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
}

type TransactionHistory struct {
	Balance        int64                 `json:"balance"`
	TransactionLog []TransactionLogEntry `json:"transactionLog"`
}

type WalletUseCase struct {
	walletRepo  repository.WalletRepository
	partnerRepo repository.PartnerRepository
	now         func() time.Time
}

func NewWalletUseCase(walletRepo repository.WalletRepository, partnerRepo repository.PartnerRepository) *WalletUseCase {
	return &WalletUseCase{
		walletRepo:  walletRepo,
		partnerRepo: partnerRepo,
		now:         time.Now,
	}
}

func (uc *WalletUseCase) Create(ctx context.Context, partnerID string) (*entity.Wallet, error) {
	if _, err := uc.partnerRepo.GetByID(ctx, partnerID); err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Partner not found"), "Failed to load partner")
	}

	now := uc.now()
	wallet := &entity.Wallet{
		PartnerID:    partnerID,
		Currency:     entity.CurrencyINR,
		IsActive:     true,
		Transactions: []entity.WalletTransaction{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.walletRepo.Create(ctx, wallet); err != nil {
		return nil, wrap(err, "Failed to create wallet")
	}
	return wallet, nil
}

func (uc *WalletUseCase) AddFunds(ctx context.Context, partnerID string, input FundsInput) (*entity.Wallet, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Valid amount in INR is required", nil)
	}
	description := input.Description
	if description == "" {
		description = "Top-up in INR"
	}

	wallet, err := uc.walletRepo.Mutate(ctx, partnerID, func(w *entity.Wallet) error {
		if !w.IsActive {
			return errors.BadRequest("Wallet is not active", nil)
		}
		uc.record(w, entity.TransactionCredit, input.Amount, description, "")
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errors.BadRequest("Wallet not created. Please create wallet first", nil), "Failed to add funds")
	}
	return wallet, nil
}

func (uc *WalletUseCase) DeductFunds(ctx context.Context, partnerID string, input FundsInput) (*entity.Wallet, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Valid amount in INR is required", nil)
	}
	description := input.Description
	if description == "" {
		description = "Payment in INR"
	}

	wallet, err := uc.walletRepo.Mutate(ctx, partnerID, func(w *entity.Wallet) error {
		if !w.IsActive {
			return errors.BadRequest("Wallet is not active", nil)
		}
		if w.TotalBalance < input.Amount {
			return errors.BadRequest("Insufficient balance in INR", nil)
		}
		uc.record(w, entity.TransactionDebit, input.Amount, description, input.OrderID)
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Wallet not found"), "Failed to deduct funds")
	}
	return wallet, nil
}

// record appends the log entry and moves the balance in the same step.
func (uc *WalletUseCase) record(w *entity.Wallet, kind entity.TransactionType, amount int64, description, orderID string) {
	now := uc.now()
	w.Transactions = append(w.Transactions, entity.WalletTransaction{
		ID:          generateUUID(),
		Type:        kind,
		Amount:      amount,
		Description: description,
		OrderID:     orderID,
		Status:      entity.TransactionCompleted,
		CreatedAt:   now,
	})
	if kind == entity.TransactionCredit {
		w.TotalBalance += amount
	} else {
		w.TotalBalance -= amount
	}
	w.UpdatedAt = now
}

func (uc *WalletUseCase) Get(ctx context.Context, partnerID string) (*entity.Wallet, error) {
	wallet, err := uc.walletRepo.Get(ctx, partnerID)
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Wallet not found"), "Failed to load wallet")
	}
	return wallet, nil
}

func (uc *WalletUseCase) ToggleStatus(ctx context.Context, partnerID string) (*entity.Wallet, error) {
	wallet, err := uc.walletRepo.Mutate(ctx, partnerID, func(w *entity.Wallet) error {
		w.IsActive = !w.IsActive
		w.UpdatedAt = uc.now()
		return nil
	})
	if err != nil {
		return nil, notFoundAs(err, errors.NotFoundMessage("Wallet not found"), "Failed to update wallet")
	}
	logger.Info("Wallet of partner %s is now active=%t", partnerID, wallet.IsActive)
	return wallet, nil
}

// TransactionHistory lists the log newest first. Partners may only read their own.
func (uc *WalletUseCase) TransactionHistory(ctx context.Context, requesterID, partnerID string) (*TransactionHistory, error) {
	if requesterID != partnerID {
		return nil, errors.Forbidden("You can only view your own wallet", nil)
	}
	wallet, err := uc.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	log := make([]TransactionLogEntry, len(wallet.Transactions))
	for i, t := range wallet.Transactions {
		log[i] = TransactionLogEntry{
			Date:        t.CreatedAt,
			Type:        t.Type,
			OrderID:     t.OrderID,
			Description: t.Description,
			Amount:      t.Amount,
		}
	}
	sort.SliceStable(log, func(i, j int) bool { return log[i].Date.After(log[j].Date) })
	return &TransactionHistory{Balance: wallet.TotalBalance, TransactionLog: log}, nil
}
