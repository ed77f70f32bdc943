package handler

import (
	"errors"
	"net/http"

	"inventory-tracker/internal/usecase"
	"inventory-tracker/pkg/response"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing; the
// rest spills to disk.
const maxUploadBytes = 10 << 20

type ImportExportHandler struct {
	importUsecase usecase.ImportUsecase
	exportUsecase usecase.ExportUsecase
}

func NewImportExportHandler(importUsecase usecase.ImportUsecase, exportUsecase usecase.ExportUsecase) *ImportExportHandler {
	return &ImportExportHandler{
		importUsecase: importUsecase,
		exportUsecase: exportUsecase,
	}
}

// Import handles bulk product creation from an uploaded CSV file
// POST /api/products/import
func (h *ImportExportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "No CSV file uploaded.", nil)
		return
	}

	file, _, err := r.FormFile("csvFile")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No CSV file uploaded.", nil)
		return
	}
	defer file.Close()

	summary, err := h.importUsecase.Import(r.Context(), file)
	if err != nil {
		response.InternalServerError(w, "Error processing CSV file.")
		return
	}

	response.Success(w, http.StatusOK, "CSV import finished.", summary)
}

// Export handles downloading the whole store as a CSV attachment
// GET /api/products/export
func (h *ImportExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportUsecase.Export(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNothingToExport):
			response.NotFound(w, "No products to export.")
		default:
			response.InternalServerError(w, "Error fetching products for export.")
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
