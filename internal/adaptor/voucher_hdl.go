package adaptor

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-booking/pkg/utils"
)

type VoucherHandler struct {
	dir string
	log *zap.Logger
}

func NewVoucherHandler(dir string, log *zap.Logger) *VoucherHandler {
	return &VoucherHandler{
		dir: dir,
		log: log.With(zap.String("handler", "voucher")),
	}
}

// Serve handles GET /vouchers/{filename}.
// Only names of the form <uuid>.pdf resolve; anything else is a 404, which
// also keeps traversal attempts out of the voucher directory.
func (h *VoucherHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	id, ok := strings.CutSuffix(filename, ".pdf")
	if !ok {
		utils.ResponseNotFound(w, "Voucher not found")
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		utils.ResponseNotFound(w, "Voucher not found")
		return
	}

	path := filepath.Join(h.dir, filename)
	if _, err := os.Stat(path); err != nil {
		utils.ResponseNotFound(w, "Voucher not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
