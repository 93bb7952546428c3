package tally

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/sangkips/tally-bridge/internal/config"
	"github.com/sangkips/tally-bridge/internal/domain/entity"
	"github.com/sangkips/tally-bridge/internal/domain/gateway"
	"github.com/sangkips/tally-bridge/pkg/apperror"
	"github.com/sangkips/tally-bridge/pkg/xmlbuilder"
)

const contentTypeXML = "application/xml; charset=utf-8"

var (
	lineErrorPattern     = regexp.MustCompile(`<LINEERROR>([^<]+)</LINEERROR>`)
	errorPattern         = regexp.MustCompile(`<ERROR>([^<]+)</ERROR>`)
	voucherNumberPattern = regexp.MustCompile(`<VOUCHERNUMBER>([^<]+)</VOUCHERNUMBER>`)
)

// Client talks to the TallyPrime XML API over the local network. It
// implements gateway.TallyGateway.
type Client struct {
	cfg        *config.TallyConfig
	httpClient *http.Client
}

// NewClient creates a Tally client for the configured endpoint. Timeouts
// are applied per operation via context deadlines.
func NewClient(cfg *config.TallyConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

var _ gateway.TallyGateway = (*Client)(nil)

// ImportVoucher renders the voucher import envelope, posts it and
// interprets Tally's response. A line-level or general error marker in the
// response surfaces as a Tally error with the engine's text verbatim. On
// success the authoritative voucher number from the response, when present,
// supersedes the locally generated one.
func (c *Client) ImportVoucher(ctx context.Context, voucher *entity.Voucher) (*gateway.ImportResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ImportTimeout)
	defer cancel()

	body, status, err := c.post(ctx, BuildVoucherXML(voucher))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apperror.NewAppError(http.StatusBadGateway, fmt.Sprintf("Tally returned HTTP %d", status))
	}

	if errMsg := extractError(body); errMsg != "" {
		return nil, apperror.NewTallyError(errMsg)
	}

	result := &gateway.ImportResult{
		VoucherNumber: voucher.VoucherNumber,
		Verified:      true,
	}
	if m := voucherNumberPattern.FindStringSubmatch(body); m != nil {
		result.VoucherNumber = strings.TrimSpace(m[1])
	}
	return result, nil
}

// ListCompanies fetches the names of companies open in Tally via a
// collection export request.
func (c *Client) ListCompanies(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CompanyTimeout)
	defer cancel()

	body, status, err := c.post(ctx, buildCompanyListRequest())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apperror.NewAppError(http.StatusBadGateway, fmt.Sprintf("Tally returned HTTP %d", status))
	}

	return parseCompanyNames(body), nil
}

// Ping checks connectivity to the Tally endpoint with a short timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.PingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ErrTallyUnreachable
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) post(ctx context.Context, payload []byte) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", contentTypeXML)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, apperror.ErrTallyUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, apperror.ErrTallyUnreachable
	}
	return string(body), resp.StatusCode, nil
}

// extractError returns the first line-level or general error text embedded
// in a Tally response, or empty when the import succeeded.
func extractError(body string) string {
	if !strings.Contains(body, "<LINEERROR>") && !strings.Contains(body, "<ERROR>") {
		return ""
	}
	if m := lineErrorPattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	if m := errorPattern.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

// buildCompanyListRequest assembles the collection export envelope that
// asks Tally for the names of open companies.
func buildCompanyListRequest() []byte {
	doc := xmlbuilder.NewDocument("ENVELOPE")

	header := doc.Root.AddChild("HEADER")
	header.AddText("VERSION", "1")
	header.AddText("TALLYREQUEST", "Export")
	header.AddText("TYPE", "Collection")
	header.AddText("ID", "List of Companies")

	body := doc.Root.AddChild("BODY")
	desc := body.AddChild("DESC")
	staticVars := desc.AddChild("STATICVARIABLES")
	staticVars.AddText("SVEXPORTFORMAT", "$SysName:XML")
	tdl := desc.AddChild("TDL")
	tdlMsg := tdl.AddChild("TDLMESSAGE")
	collection := tdlMsg.AddChild("COLLECTION").SetAttr("NAME", "List of Companies")
	collection.AddText("TYPE", "Company")
	collection.AddText("FETCH", "Name")

	return doc.Bytes()
}

// parseCompanyNames pulls NAME values out of COMPANY elements in a Tally
// collection response. Malformed trailing content is tolerated; whatever
// parsed before the error is returned.
func parseCompanyNames(body string) []string {
	var companies []string
	decoder := xml.NewDecoder(strings.NewReader(body))

	inCompany := false
	inName := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "COMPANY":
				inCompany = true
			case "NAME":
				inName = inCompany
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "COMPANY":
				inCompany = false
			case "NAME":
				inName = false
			}
		case xml.CharData:
			if inName {
				if name := strings.TrimSpace(string(t)); name != "" {
					companies = append(companies, name)
				}
			}
		}
	}
	return companies
}
