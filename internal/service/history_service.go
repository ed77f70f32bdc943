package service

import (
	"context"
	"time"

	"inventory-tracker/internal/domain/entity"
	"inventory-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type HistoryService interface {
	RecordStockChange(ctx context.Context, productID uint, oldStock, newStock int) error
}

type historyService struct {
	log         *logrus.Logger
	historyRepo repository.InventoryHistoryRepository
}

func NewHistoryService(log *logrus.Logger, historyRepo repository.InventoryHistoryRepository) HistoryService {
	return &historyService{
		log:         log,
		historyRepo: historyRepo,
	}
}

// RecordStockChange appends a history entry for a stock transition.
// Callers decide whether a failure here is fatal; the product update
// path treats it as non-fatal.
func (s *historyService) RecordStockChange(ctx context.Context, productID uint, oldStock, newStock int) error {
	entry := &entity.InventoryHistory{
		ProductID:   productID,
		OldQuantity: oldStock,
		NewQuantity: newStock,
		ChangeDate:  time.Now().UTC(),
		UserInfo:    entity.DefaultUserInfo,
	}

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		s.log.Warnf("Failed to create inventory history entry: %+v", err)
		return err
	}

	return nil
}
