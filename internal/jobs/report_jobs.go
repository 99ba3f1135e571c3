package jobs

import (
	"context"
	"time"

	"debitit-backend/internal/domain"
	"debitit-backend/internal/logger"
)

type bookOwner struct {
	ID    int32
	Email string
}

func (jr *JobRunner) listOwners(ctx context.Context) ([]bookOwner, error) {
	rows, err := jr.db.QueryContext(ctx, `SELECT id, email FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []bookOwner
	for rows.Next() {
		var o bookOwner
		if err := rows.Scan(&o.ID, &o.Email); err != nil {
			logger.Error("Failed to scan user row", "error", err)
			continue
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// SendDailySummaryReports emails every user their current net cash and bank
// balances.
func (jr *JobRunner) SendDailySummaryReports() {
	jr.runWithRecovery("SendDailySummaryReports", func() {
		ctx := context.Background()

		owners, err := jr.listOwners(ctx)
		if err != nil {
			logger.Error("Failed to list users for daily summary", "error", err)
			return
		}

		sent := 0
		for _, owner := range owners {
			netCash, err := jr.services.Ledger.GetNetBalance(ctx, owner.ID, domain.AccountCash)
			if err != nil {
				logger.Error("Failed to compute net cash", "user_id", owner.ID, "error", err)
				continue
			}
			netBank, err := jr.services.Ledger.GetNetBalance(ctx, owner.ID, domain.AccountBank)
			if err != nil {
				logger.Error("Failed to compute net bank", "user_id", owner.ID, "error", err)
				continue
			}
			if err := jr.services.Email.SendDailySummary(ctx, owner.Email, time.Now(), netCash, netBank); err != nil {
				logger.Error("Failed to send daily summary", "user_id", owner.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Daily summaries sent", "count", sent)
	})
}

// SendLowStockReports emails every user whose products have fallen below the
// configured stock threshold.
func (jr *JobRunner) SendLowStockReports() {
	jr.runWithRecovery("SendLowStockReports", func() {
		ctx := context.Background()
		threshold := jr.config.Inventory.LowStockThreshold

		owners, err := jr.listOwners(ctx)
		if err != nil {
			logger.Error("Failed to list users for low stock report", "error", err)
			return
		}

		sent := 0
		for _, owner := range owners {
			products, err := jr.store.ProductRepository.ListLowStock(ctx, owner.ID, threshold)
			if err != nil {
				logger.Error("Failed to list low stock products", "user_id", owner.ID, "error", err)
				continue
			}
			if len(products) == 0 {
				continue
			}
			if err := jr.services.Email.SendLowStockAlert(ctx, owner.Email, products); err != nil {
				logger.Error("Failed to send low stock alert", "user_id", owner.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Low stock alerts sent", "count", sent)
	})
}
