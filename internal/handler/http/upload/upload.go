// Package upload provides the privileged cover image upload endpoint.
package upload

import (
	"errors"
	"net/http"

	httphandler "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/handler/http/auth"
	"portfolio-blog/internal/handler/http/respond"
	uploadUC "portfolio-blog/internal/usecase/upload"
)

type Handler struct{ Svc *uploadUC.Service }

// ServeHTTP stores a multipart cover image upload.
// @Summary      Upload cover image
// @Description  Accepts a multipart form with a "file" field. The content type is sniffed from the file bytes; only jpeg, png, gif and webp are accepted, up to 5MB.
// @Tags         upload
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file"
// @Success      200 {object} uploadUC.Result "Stored file URL and name"
// @Failure      400 {string} string "Bad request - missing file, too large or unsupported type"
// @Failure      401 {string} string "Authentication required"
// @Router       /api/upload [post]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		httphandler.RecordUpload(false)
		respond.SafeError(w, http.StatusBadRequest, errors.New("file field is required"))
		return
	}
	defer file.Close()

	result, err := h.Svc.Upload(r.Context(), file, header.Size)
	if err != nil {
		httphandler.RecordUpload(false)
		code := http.StatusInternalServerError
		if errors.Is(err, uploadUC.ErrFileTooLarge) || errors.Is(err, uploadUC.ErrUnsupportedType) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	httphandler.RecordUpload(true)
	respond.JSON(w, http.StatusOK, result)
}

// Register registers the upload endpoint with the given mux.
func Register(mux *http.ServeMux, svc *uploadUC.Service, policy auth.Policy) {
	mux.Handle("POST   /api/upload", auth.Middleware(policy)(Handler{Svc: svc}))
}
