package adaptor

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func voucherTestRouter(t *testing.T) (*chi.Mux, string) {
	t.Helper()
	dir := t.TempDir()
	h := NewVoucherHandler(dir, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/vouchers/{filename}", h.Serve)
	return r, dir
}

func TestServeVoucher_Found(t *testing.T) {
	router, dir := voucherTestRouter(t)

	id := uuid.New().String()
	require.NoError(t, os.WriteFile(filepath.Join(dir, id+".pdf"), []byte("%PDF-1.4 test"), 0644))

	req := httptest.NewRequest(http.MethodGet, "/vouchers/"+id+".pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.4 test", rec.Body.String())
}

func TestServeVoucher_AbsentIs404(t *testing.T) {
	router, _ := voucherTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/vouchers/"+uuid.New().String()+".pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeVoucher_RejectsNonVoucherNames(t *testing.T) {
	router, dir := voucherTestRouter(t)

	// A stray non-voucher file in the directory must not be reachable.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("private"), 0644))

	for _, name := range []string{"notes.txt", "not-a-uuid.pdf", "..%2F..%2Fetc%2Fpasswd"} {
		req := httptest.NewRequest(http.MethodGet, "/vouchers/"+name, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "name %q", name)
	}
}
