package handler

import (
	"io"
	"net/http"

	"gocloud.dev/gcerrors"
)

// ServeFile streams a stored invoice.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.Files.Open(r.Context(), r.PathValue("key"))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			http.NotFound(w, r)
			return
		}
		ErrorHandler(r.Context(), w, r, err)
		return
	}
	defer func() { _ = rc.Close() }()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = io.Copy(w, rc)
}
