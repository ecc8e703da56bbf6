package walletController

import (
	"log"

	"porto/database"
	"porto/middleware"
	"porto/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AddBalance adds balance to a user's wallet (Admin only)
func AddBalance(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAddBalance").(*struct {
		UserID uint    `json:"userId"`
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var targetUser models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	tx := db.Begin()

	txn, err := Credit(tx, reqData.UserID, reqData.Amount, models.TransactionTypeAdminCredit,
		"Admin credit: "+reqData.Reason, &models.WalletTransaction{
			AdminID: adminId,
			Reason:  reqData.Reason,
		})
	if err != nil {
		tx.Rollback()
		log.Printf("Admin credit failed for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add balance!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Balance added successfully!", fiber.Map{
		"transactionId":   txn.ID,
		"userId":          reqData.UserID,
		"previousBalance": txn.BalanceBefore,
		"amountAdded":     txn.Amount,
		"newBalance":      txn.BalanceAfter,
		"reason":          reqData.Reason,
	})
}

// DeductBalance deducts balance from a user's wallet (Admin only)
func DeductBalance(c *fiber.Ctx) error {
	adminId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDeductBalance").(*struct {
		UserID uint    `json:"userId"`
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var targetUser models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	tx := db.Begin()

	txn, err := Debit(tx, reqData.UserID, reqData.Amount, models.TransactionTypeAdminDebit,
		"admin", adminId, "", "Admin debit: "+reqData.Reason)
	if err != nil {
		tx.Rollback()
		if err == ErrInsufficientFunds {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance to deduct!", nil)
		}
		log.Printf("Admin debit failed for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deduct balance!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Balance deducted successfully!", fiber.Map{
		"transactionId":   txn.ID,
		"userId":          reqData.UserID,
		"previousBalance": txn.BalanceBefore,
		"amountDeducted":  txn.Amount,
		"newBalance":      txn.BalanceAfter,
		"reason":          reqData.Reason,
	})
}

// GetUserBalance returns a specific user's balance (Admin only)
func GetUserBalance(c *fiber.Ctx) error {
	targetUserId := c.QueryInt("userId", 0)
	if targetUserId == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}

	db := database.Database.Db

	var targetUser models.User
	if err := db.Where("id = ? AND is_deleted = false", targetUserId).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	wallet, err := GetOrCreateWallet(db, uint(targetUserId))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User balance fetched!", fiber.Map{
		"userId":         targetUser.ID,
		"name":           targetUser.Name,
		"email":          targetUser.Email,
		"balance":        wallet.Balance,
		"totalDeposited": wallet.TotalDeposited,
		"totalSpent":     wallet.TotalSpent,
	})
}

// GetUserHistory returns a specific user's transaction history (Admin only)
func GetUserHistory(c *fiber.Ctx) error {
	targetUserId := c.QueryInt("userId", 0)
	if targetUserId == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var targetUser models.User
	if err := db.Where("id = ? AND is_deleted = false", targetUserId).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	query := db.Model(&models.WalletTransaction{}).Where("user_id = ? AND is_deleted = false", targetUserId)

	var total int64
	query.Count(&total)

	var transactions []models.WalletTransaction
	if err := query.Order("transaction_date DESC").Offset(offset).Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User history fetched!", fiber.Map{
		"userId":       targetUser.ID,
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetWalletStats returns deposit/purchase volume for today and this month (Admin only)
func GetWalletStats(c *fiber.Ctx) error {
	db := database.Database.Db

	dayStart := now.BeginningOfDay()
	monthStart := now.BeginningOfMonth()

	sumSince := func(txnType models.TransactionType, since interface{}) float64 {
		var total float64
		q := db.Model(&models.WalletTransaction{}).
			Where("transaction_type = ? AND is_deleted = false", txnType).
			Select("COALESCE(SUM(amount), 0)")
		if since != nil {
			q = q.Where("transaction_date >= ?", since)
		}
		q.Scan(&total)
		return total
	}

	var totalTxns int64
	db.Model(&models.WalletTransaction{}).Where("is_deleted = false").Count(&totalTxns)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet stats fetched!", fiber.Map{
		"transactions": totalTxns,
		"deposits": fiber.Map{
			"today":     sumSince(models.TransactionTypeDeposit, dayStart),
			"thisMonth": sumSince(models.TransactionTypeDeposit, monthStart),
			"allTime":   sumSince(models.TransactionTypeDeposit, nil),
		},
		"purchases": fiber.Map{
			"today":     sumSince(models.TransactionTypePurchase, dayStart),
			"thisMonth": sumSince(models.TransactionTypePurchase, monthStart),
			"allTime":   sumSince(models.TransactionTypePurchase, nil),
		},
	})
}
