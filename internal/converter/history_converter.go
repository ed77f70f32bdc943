package converter

import (
	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/domain/entity"
)

// HistoriesToResponses converts a slice of InventoryHistory entities to
// slice of HistoryResponse DTOs
func HistoriesToResponses(entries []entity.InventoryHistory) []dto.HistoryResponse {
	responses := make([]dto.HistoryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.HistoryResponse{
			ID:          entry.ID,
			ProductID:   entry.ProductID,
			OldQuantity: entry.OldQuantity,
			NewQuantity: entry.NewQuantity,
			ChangeDate:  entry.ChangeDate,
			UserInfo:    entry.UserInfo,
		}
	}
	return responses
}
