package walletController

import (
	"errors"
	"time"

	"porto/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidAmount is returned for zero or negative amounts
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrInsufficientFunds is returned when a debit exceeds the wallet balance
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// GetOrCreateWallet returns the wallet row for a user, creating a zero-balance
// row on first access.
func GetOrCreateWallet(db *gorm.DB, userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := db.Where("user_id = ?", userID).First(&wallet).Error
	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = models.Wallet{UserID: userID}
	if err := db.Create(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit adds funds to a wallet and writes the paired transaction row. Must be
// called inside an open transaction so the balance change and the ledger row
// commit together.
func Credit(tx *gorm.DB, userID uint, amount float64, txnType models.TransactionType, description string, txn *models.WalletTransaction) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := GetOrCreateWallet(tx, userID)
	if err != nil {
		return nil, err
	}

	balanceBefore := wallet.Balance

	res := tx.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", amount),
			"total_deposited": gorm.Expr("total_deposited + ?", amount),
		})
	if res.Error != nil {
		return nil, res.Error
	}

	record := models.WalletTransaction{}
	if txn != nil {
		record = *txn
	}
	record.UserID = userID
	record.TransactionType = txnType
	record.Amount = amount
	record.BalanceBefore = balanceBefore
	record.BalanceAfter = balanceBefore + amount
	record.Status = models.TransactionStatusCompleted
	record.Description = description
	record.TransactionDate = time.Now()

	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// Debit removes funds from a wallet and writes a PURCHASE transaction row.
// The balance check and the decrement happen in a single conditional UPDATE,
// so two concurrent debits cannot both pass the funds check: the second one
// matches no row and fails with ErrInsufficientFunds, leaving no ledger row.
// Must be called inside an open transaction.
func Debit(tx *gorm.DB, userID uint, amount float64, txnType models.TransactionType, refType string, refID uint, refName, description string) (*models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	// Ensure the wallet row exists before the conditional update so zero
	// affected rows always means insufficient balance.
	if _, err := GetOrCreateWallet(tx, userID); err != nil {
		return nil, err
	}

	res := tx.Model(&models.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":     gorm.Expr("balance - ?", amount),
			"total_spent": gorm.Expr("total_spent + ?", amount),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInsufficientFunds
	}

	var wallet models.Wallet
	if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
		return nil, err
	}

	record := models.WalletTransaction{
		UserID:          userID,
		TransactionType: txnType,
		Amount:          amount,
		BalanceBefore:   wallet.Balance + amount,
		BalanceAfter:    wallet.Balance,
		Status:          models.TransactionStatusCompleted,
		Description:     description,
		ReferenceType:   refType,
		ReferenceID:     refID,
		ReferenceName:   refName,
		TransactionDate: time.Now(),
	}

	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
