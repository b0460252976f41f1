package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "kwarta/internal/errors"
	"kwarta/internal/models"
	"kwarta/internal/pagination"
)

// walletService handles wallet-related business logic.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// CreateWallet creates a new wallet for a user. A non-zero initial balance
// is recorded as an income transaction so the ledger stays consistent with
// the running balance.
func (s *walletService) CreateWallet(userID, name string, walletType models.WalletType, initialBalance float64, color, icon string) (*models.Wallet, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet name is required")
	}
	if initialBalance < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "initial balance cannot be negative")
	}

	wallet := &models.Wallet{
		UserID:  userID,
		Name:    name,
		Type:    walletType,
		Balance: initialBalance,
		Color:   color,
		Icon:    icon,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(wallet).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if initialBalance > 0 {
			transaction := &models.Transaction{
				UserID:      userID,
				WalletID:    wallet.ID,
				Type:        models.TransactionTypeIncome,
				Amount:      initialBalance,
				Description: "Initial balance",
				Date:        time.Now(),
			}
			if err := tx.Create(transaction).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wallet, nil
}

// GetUserWallets retrieves a paginated list of wallets for a user.
func (s *walletService) GetUserWallets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Wallet], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Wallet{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var wallets []models.Wallet
	if err := base.Scopes(pagination.Paginate(page)).Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(wallets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetWalletByID retrieves a wallet by ID for a specific user
func (s *walletService) GetWalletByID(userID, walletID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.Where("id = ? AND user_id = ?", walletID, userID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}

// UpdateWallet updates an existing wallet's display fields. Balance is never
// set directly; it only moves through transactions and transfers.
func (s *walletService) UpdateWallet(userID, walletID, name, color, icon string) (*models.Wallet, error) {
	wallet, err := s.GetWalletByID(userID, walletID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if color != "" {
		updates["color"] = color
	}
	if icon != "" {
		updates["icon"] = icon
	}

	if len(updates) > 0 {
		if err := s.db.Model(wallet).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return wallet, nil
}

// DeleteWallet soft-deletes a wallet and its transactions.
func (s *walletService) DeleteWallet(userID, walletID string) error {
	wallet, err := s.GetWalletByID(userID, walletID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", wallet.ID).Delete(&models.Transaction{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(wallet).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// Transfer moves money between two wallets of the same user. Both balance
// adjustments happen in one database transaction.
func (s *walletService) Transfer(userID, fromWalletID, toWalletID string, amount float64, description string) error {
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer amount must be greater than zero")
	}
	if fromWalletID == toWalletID {
		return apperrors.ErrSameWalletTransfer
	}

	from, err := s.GetWalletByID(userID, fromWalletID)
	if err != nil {
		return err
	}
	to, err := s.GetWalletByID(userID, toWalletID)
	if err != nil {
		return err
	}

	if from.Balance < amount {
		return apperrors.ErrInsufficientBalance
	}

	if description == "" {
		description = "Transfer from " + from.Name + " to " + to.Name
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		out := &models.Transaction{
			UserID:      userID,
			WalletID:    from.ID,
			Type:        models.TransactionTypeExpense,
			Amount:      -amount,
			Description: description,
			Date:        now,
		}
		if err := tx.Create(out).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		in := &models.Transaction{
			UserID:      userID,
			WalletID:    to.ID,
			Type:        models.TransactionTypeIncome,
			Amount:      amount,
			Description: description,
			Date:        now,
		}
		if err := tx.Create(in).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.AdjustBalance(tx, from, models.TransactionTypeExpense, amount); err != nil {
			return err
		}
		return s.AdjustBalance(tx, to, models.TransactionTypeIncome, amount)
	})
}

// TotalBalance sums the balances of all of a user's wallets.
func (s *walletService) TotalBalance(userID string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Wallet{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// AdjustBalance applies a transaction's effect to a wallet's running balance.
// The amount may be signed; only its magnitude is applied, with direction
// taken from the transaction type.
func (s *walletService) AdjustBalance(tx *gorm.DB, wallet *models.Wallet, transactionType models.TransactionType, amount float64) error {
	if amount < 0 {
		amount = -amount
	}

	switch transactionType {
	case models.TransactionTypeIncome:
		wallet.Balance += amount
	case models.TransactionTypeExpense:
		wallet.Balance -= amount
	default:
		return apperrors.ErrInvalidTransactionType
	}

	if err := tx.Model(wallet).Update("balance", wallet.Balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
