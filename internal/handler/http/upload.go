package http

import (
	"log/slog"
	"net/http"

	"github.com/hazari-app/hazari-backend-go/internal/handler/http/response"
	"github.com/hazari-app/hazari-backend-go/internal/service/file"
)

type UploadHandler interface {
	UploadImage(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	fileService file.FileService
}

func NewUploadHandler(fileService file.FileService) UploadHandler {
	return &UploadHandlerImpl{fileService: fileService}
}

// UploadImage implements UploadHandler. The mobile app uploads the evidence
// photo first, then sends the returned path with check-in or check-out.
func (h *UploadHandlerImpl) UploadImage(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	f, fileHeader, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'image' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer f.Close()

	path, err := h.fileService.UploadImage(r.Context(), f, fileHeader.Filename)
	if err != nil {
		slog.Error("UploadImage service error", "error", err)
		response.BadRequest(w, err.Error(), nil)
		return
	}

	response.Created(w, "Image uploaded", map[string]string{"path": path})
}
