package walletController

import (
	"log"

	"porto/database"
	"porto/middleware"
	"porto/models"
	"porto/utils"

	"github.com/gofiber/fiber/v2"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	wallet, err := GetOrCreateWallet(database.Database.Db, userId)
	if err != nil {
		log.Printf("Failed to load wallet for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance":        wallet.Balance,
		"totalDeposited": wallet.TotalDeposited,
		"totalSpent":     wallet.TotalSpent,
		"currency":       "USD",
	})
}

// DepositToWallet credits the wallet after verifying the payment reference
func DepositToWallet(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	reqData, ok := c.Locals("validatedDeposit").(*struct {
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod"`
		PaymentID     string  `json:"paymentId"`
		Description   string  `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if payment ID already exists (duplicate transaction)
	var existingTxn models.WalletTransaction
	if err := db.Where("payment_id = ? AND is_deleted = false", reqData.PaymentID).First(&existingTxn).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	}

	// Verify the payment reference with the gateway when one is configured
	if err := utils.VerifyPayment(reqData.PaymentID, reqData.Amount); err != nil {
		log.Printf("Payment verification failed for %s: %v", reqData.PaymentID, err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment verification failed!", nil)
	}

	description := reqData.Description
	if description == "" {
		description = "Wallet deposit via " + reqData.PaymentMethod
	}

	tx := db.Begin()

	txn, err := Credit(tx, userId, reqData.Amount, models.TransactionTypeDeposit, description, &models.WalletTransaction{
		PaymentMethod: reqData.PaymentMethod,
		PaymentID:     reqData.PaymentID,
	})
	if err != nil {
		tx.Rollback()
		if err == ErrInvalidAmount {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		}
		log.Printf("Deposit failed for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process deposit!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit successful!", fiber.Map{
		"transactionId": txn.ID,
		"amount":        txn.Amount,
		"balanceBefore": txn.BalanceBefore,
		"balanceAfter":  txn.BalanceAfter,
		"paymentId":     txn.PaymentID,
		"status":        txn.Status,
	})
}

// GetWalletHistory returns user's wallet transaction history
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // DEPOSIT, PURCHASE, etc.

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	wallet, err := GetOrCreateWallet(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	query := db.Model(&models.WalletTransaction{}).Where("user_id = ? AND is_deleted = false", userId)

	if txnType != "" {
		query = query.Where("transaction_type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.WalletTransaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions":   transactions,
		"currentBalance": wallet.Balance,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
