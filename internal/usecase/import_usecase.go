package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"inventory-tracker/internal/delivery/dto"
	"inventory-tracker/internal/domain/entity"
	"inventory-tracker/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrFileProcessing = errors.New("error processing CSV file")

const (
	defaultImportStatus = "In Stock"
	skipReasonInvalid   = "Missing Name or Invalid Stock"
	skipReasonDuplicate = "Duplicate Name"
)

type ImportUsecase interface {
	Import(ctx context.Context, upload io.Reader) (*dto.ImportSummary, error)
}

type importUsecase struct {
	log         *logrus.Logger
	productRepo repository.ProductRepository
	uploadDir   string
}

func NewImportUsecase(log *logrus.Logger, productRepo repository.ProductRepository, uploadDir string) ImportUsecase {
	return &importUsecase{
		log:         log,
		productRepo: productRepo,
		uploadDir:   uploadDir,
	}
}

// importState accumulates the per-row outcomes. Row operations run as
// independent goroutines, so every mutation goes through the mutex and
// the WaitGroup is the completion barrier joined before the summary is
// built.
type importState struct {
	wg      sync.WaitGroup
	mu      sync.Mutex
	added   int
	skipped []dto.SkippedProduct
	faults  int
}

func (s *importState) addOne() {
	s.mu.Lock()
	s.added++
	s.mu.Unlock()
}

func (s *importState) skip(name, reason string) {
	s.mu.Lock()
	s.skipped = append(s.skipped, dto.SkippedProduct{Name: name, Reason: reason})
	s.mu.Unlock()
}

func (s *importState) fault() {
	s.mu.Lock()
	s.faults++
	s.mu.Unlock()
}

func (s *importState) summary() *dto.ImportSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	skippedRows := s.skipped
	if skippedRows == nil {
		skippedRows = []dto.SkippedProduct{}
	}
	return &dto.ImportSummary{
		Added:           s.added,
		Skipped:         len(skippedRows) + s.faults,
		SkippedProducts: skippedRows,
	}
}

// Import streams a CSV upload row by row, inserting rows whose name is
// not already taken. The upload is spooled to a temporary file first and
// that file is removed on every exit path. Each accepted row runs as an
// independent insert; the summary is only built once all of them have
// settled.
func (u *importUsecase) Import(ctx context.Context, upload io.Reader) (*dto.ImportSummary, error) {
	path, err := u.spool(upload)
	if err != nil {
		u.log.Warnf("Failed to store uploaded CSV: %+v", err)
		return nil, ErrFileProcessing
	}
	defer os.Remove(path)

	file, err := os.Open(path)
	if err != nil {
		u.log.Warnf("Failed to reopen uploaded CSV: %+v", err)
		return nil, ErrFileProcessing
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	state := &importState{}

	header, err := reader.Read()
	if err == io.EOF {
		return state.summary(), nil
	}
	if err != nil {
		u.log.Warnf("Failed to read CSV header: %+v", err)
		return nil, ErrFileProcessing
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var readErr error
	for {
		if ctx.Err() != nil {
			readErr = ctx.Err()
			break
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = err
			break
		}

		u.dispatchRow(ctx, state, columns, record)
	}

	// Completion barrier: in-flight row operations must settle before
	// the summary is finalized and the temp file released.
	state.wg.Wait()

	if readErr != nil {
		u.log.Warnf("CSV import aborted: %+v", readErr)
		return nil, ErrFileProcessing
	}
	return state.summary(), nil
}

// dispatchRow validates and normalizes one CSV record, then hands the
// insert off to its own goroutine.
func (u *importUsecase) dispatchRow(ctx context.Context, state *importState, columns map[string]int, record []string) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	name := strings.TrimSpace(field("name"))

	stock, convErr := strconv.Atoi(strings.TrimSpace(field("stock")))

	if name == "" || convErr != nil {
		label := name
		if label == "" {
			label = "Invalid Name"
		}
		state.skip(label, skipReasonInvalid)
		return
	}

	status := field("status")
	if status == "" {
		status = defaultImportStatus
	}

	product := &entity.Product{
		Name:     name,
		Unit:     field("unit"),
		Category: field("category"),
		Brand:    field("brand"),
		Stock:    stock,
		Status:   status,
		Image:    field("image"),
	}

	state.wg.Add(1)
	go func() {
		defer state.wg.Done()

		inserted, err := u.productRepo.CreateIfNameAbsent(ctx, product)
		if err != nil {
			// Storage faults never abort the batch.
			u.log.Warnf("Failed to import row %q: %+v", product.Name, err)
			state.fault()
			return
		}
		if !inserted {
			state.skip(product.Name, skipReasonDuplicate)
			return
		}
		state.addOne()
	}()
}

// spool writes the upload to a uniquely named file under the configured
// uploads directory so the import can stream from disk.
func (u *importUsecase) spool(upload io.Reader) (string, error) {
	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(u.uploadDir, uuid.New().String()+".csv")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, upload); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
