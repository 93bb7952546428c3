package tally

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/tally-bridge/internal/config"
	"github.com/sangkips/tally-bridge/pkg/apperror"
)

func newTestClient(url string) *Client {
	return NewClient(&config.TallyConfig{
		URL:            url,
		ImportTimeout:  5 * time.Second,
		CompanyTimeout: 5 * time.Second,
		PingTimeout:    time.Second,
	})
}

func TestImportVoucher_Success(t *testing.T) {
	t.Parallel()

	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/xml; charset=utf-8", r.Header.Get("Content-Type"))
		received, _ = io.ReadAll(r.Body)
		w.Write([]byte("<RESPONSE><CREATED>1</CREATED><VOUCHERNUMBER> RS-25/26-0007 </VOUCHERNUMBER></RESPONSE>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.ImportVoucher(context.Background(), sampleVoucher())
	require.NoError(t, err)

	// Tally's own voucher number supersedes the local one, trimmed.
	assert.Equal(t, "RS-25/26-0007", result.VoucherNumber)
	assert.True(t, result.Verified)
	assert.Contains(t, string(received), "<VOUCHERNUMBER>RS-25/26-1234</VOUCHERNUMBER>")
}

func TestImportVoucher_NoEchoedNumberKeepsLocal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<RESPONSE><CREATED>1</CREATED></RESPONSE>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	result, err := client.ImportVoucher(context.Background(), sampleVoucher())
	require.NoError(t, err)
	assert.Equal(t, "RS-25/26-1234", result.VoucherNumber)
}

func TestImportVoucher_LineError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<RESPONSE><LINEERROR>Ledger 'CGST 9%' does not exist!</LINEERROR></RESPONSE>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ImportVoucher(context.Background(), sampleVoucher())
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Tally Error: Ledger 'CGST 9%' does not exist!", appErr.Message)
}

func TestImportVoucher_GeneralError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<RESPONSE><ERROR>Voucher Type 'Retail Sale' does not exist!</ERROR></RESPONSE>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ImportVoucher(context.Background(), sampleVoucher())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tally Error: Voucher Type 'Retail Sale' does not exist!")
}

func TestImportVoucher_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.ImportVoucher(context.Background(), sampleVoucher())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tally returned HTTP 500")
}

func TestImportVoucher_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(srv.URL)
	_, err := client.ImportVoucher(context.Background(), sampleVoucher())
	assert.ErrorIs(t, err, apperror.ErrTallyUnreachable)
}

func TestListCompanies(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<ENVELOPE><BODY><DATA><COLLECTION>
			<COMPANY><NAME> Rohit Stores </NAME></COMPANY>
			<COMPANY><NAME>Sharma Electronics</NAME></COMPANY>
		</COLLECTION></DATA></BODY></ENVELOPE>`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	companies, err := client.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Rohit Stores", "Sharma Electronics"}, companies)
}

func TestListCompanies_Empty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<ENVELOPE><BODY></BODY></ENVELOPE>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	companies, err := client.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, companies)
}

func TestPing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.ErrorIs(t, client.Ping(context.Background()), apperror.ErrTallyUnreachable)
}
