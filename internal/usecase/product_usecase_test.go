package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/domain/entity"
	"inventory-tracker/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newProductUsecase(productRepo *mockProductRepo, historyRepo *mockHistoryRepo) ProductUsecase {
	log := testLogger()
	historyService := service.NewHistoryService(log, historyRepo)
	return NewProductUsecase(log, productRepo, historyRepo, historyService)
}

func intPtr(v int) *int { return &v }

func TestUpdate_StockChangeRecordsHistory(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{}
	uc := newProductUsecase(productRepo, historyRepo)

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 10})

	result, err := uc.Update(context.Background(), p.ID, &dto.UpdateProductRequest{
		Name:  "Widget",
		Stock: intPtr(7),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !result.Changed {
		t.Error("expected the update to report a change")
	}

	entries := historyRepo.forProduct(p.ID)
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0].OldQuantity != 10 || entries[0].NewQuantity != 7 {
		t.Errorf("expected old=10 new=7, got old=%d new=%d", entries[0].OldQuantity, entries[0].NewQuantity)
	}
	if entries[0].UserInfo != entity.DefaultUserInfo {
		t.Errorf("expected user info %q, got %q", entity.DefaultUserInfo, entries[0].UserInfo)
	}
}

func TestUpdate_SameStockNoHistory(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{}
	uc := newProductUsecase(productRepo, historyRepo)

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 10})

	_, err := uc.Update(context.Background(), p.ID, &dto.UpdateProductRequest{
		Name:  "Widget",
		Brand: "Acme",
		Stock: intPtr(10),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if entries := historyRepo.forProduct(p.ID); len(entries) != 0 {
		t.Errorf("expected no history entries, got %d", len(entries))
	}
	updated, _ := productRepo.get(p.ID)
	if updated.Brand != "Acme" {
		t.Errorf("expected brand to be updated, got %q", updated.Brand)
	}
}

func TestUpdate_DuplicateNameAbortsBeforeWrite(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{}
	uc := newProductUsecase(productRepo, historyRepo)

	productRepo.seed(entity.Product{Name: "Widget", Stock: 10})
	p2 := productRepo.seed(entity.Product{Name: "Gadget", Stock: 5})

	_, err := uc.Update(context.Background(), p2.ID, &dto.UpdateProductRequest{
		Name:  "Widget",
		Stock: intPtr(1),
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got: %v", err)
	}

	unchanged, _ := productRepo.get(p2.ID)
	if unchanged.Name != "Gadget" || unchanged.Stock != 5 {
		t.Errorf("expected no writes after conflict, got %+v", unchanged)
	}
	if entries := historyRepo.forProduct(p2.ID); len(entries) != 0 {
		t.Errorf("expected no history entries, got %d", len(entries))
	}
}

func TestUpdate_KeepingOwnNameIsNotAConflict(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{}
	uc := newProductUsecase(productRepo, historyRepo)

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 10})

	if _, err := uc.Update(context.Background(), p.ID, &dto.UpdateProductRequest{
		Name:  "Widget",
		Stock: intPtr(3),
	}); err != nil {
		t.Fatalf("expected update against own name to succeed, got: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := newProductUsecase(newMockProductRepo(), &mockHistoryRepo{})

	_, err := uc.Update(context.Background(), 42, &dto.UpdateProductRequest{
		Name:  "Widget",
		Stock: intPtr(1),
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestUpdate_HistoryFailureDoesNotFailUpdate(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{failing: true}
	uc := newProductUsecase(productRepo, historyRepo)

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 10})

	result, err := uc.Update(context.Background(), p.ID, &dto.UpdateProductRequest{
		Name:  "Widget",
		Stock: intPtr(2),
	})
	if err != nil {
		t.Fatalf("expected history failure to be swallowed, got: %v", err)
	}
	if !result.Changed {
		t.Error("expected the update itself to be applied")
	}
	updated, _ := productRepo.get(p.ID)
	if updated.Stock != 2 {
		t.Errorf("expected stock 2, got %d", updated.Stock)
	}
}

func TestCreate_Success(t *testing.T) {
	productRepo := newMockProductRepo()
	uc := newProductUsecase(productRepo, &mockHistoryRepo{})

	created, err := uc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "  Widget  ",
		Stock: intPtr(4),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
	if created.Name != "Widget" {
		t.Errorf("expected trimmed name, got %q", created.Name)
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	productRepo := newMockProductRepo()
	uc := newProductUsecase(productRepo, &mockHistoryRepo{})

	productRepo.seed(entity.Product{Name: "Widget", Stock: 1})

	_, err := uc.Create(context.Background(), &dto.CreateProductRequest{
		Name:  "Widget",
		Stock: intPtr(4),
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got: %v", err)
	}
	if productRepo.count() != 1 {
		t.Errorf("expected store size 1, got %d", productRepo.count())
	}
}

func TestDelete(t *testing.T) {
	productRepo := newMockProductRepo()
	uc := newProductUsecase(productRepo, &mockHistoryRepo{})

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 1})

	if err := uc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := uc.Delete(context.Background(), p.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got: %v", err)
	}
}

func TestGetAll_SortAllowList(t *testing.T) {
	productRepo := newMockProductRepo()
	uc := newProductUsecase(productRepo, &mockHistoryRepo{})

	cases := []struct {
		name      string
		sort      string
		order     string
		wantSort  string
		wantOrder string
	}{
		{"unknown sort falls back to id", "price; DROP TABLE products", "asc", "id", "asc"},
		{"empty sort defaults to id", "", "", "id", "asc"},
		{"text column is lowercased", "name", "DESC", "LOWER(name)", "desc"},
		{"numeric column kept as is", "stock", "desc", "stock", "desc"},
		{"bad order defaults to asc", "id", "sideways", "id", "asc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.GetAll(context.Background(), &dto.ListProductsQuery{Sort: tc.sort, Order: tc.order}); err != nil {
				t.Fatalf("list failed: %v", err)
			}
			if productRepo.lastFilter.Sort != tc.wantSort {
				t.Errorf("expected sort %q, got %q", tc.wantSort, productRepo.lastFilter.Sort)
			}
			if productRepo.lastFilter.Order != tc.wantOrder {
				t.Errorf("expected order %q, got %q", tc.wantOrder, productRepo.lastFilter.Order)
			}
		})
	}
}

func TestGetHistory_NewestFirst(t *testing.T) {
	productRepo := newMockProductRepo()
	historyRepo := &mockHistoryRepo{}
	uc := newProductUsecase(productRepo, historyRepo)

	p := productRepo.seed(entity.Product{Name: "Widget", Stock: 10})

	for _, stock := range []int{7, 12} {
		if _, err := uc.Update(context.Background(), p.ID, &dto.UpdateProductRequest{
			Name:  "Widget",
			Stock: intPtr(stock),
		}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
	}

	entries, err := uc.GetHistory(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].OldQuantity != 7 || entries[0].NewQuantity != 12 {
		t.Errorf("expected newest entry first (7 -> 12), got %d -> %d", entries[0].OldQuantity, entries[0].NewQuantity)
	}
}
