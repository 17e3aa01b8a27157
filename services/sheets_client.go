package services

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"storefront-service/models"
)

// SheetsClient mirrors leads into a Google spreadsheet. Every failure mode —
// missing configuration, malformed credentials, API errors — degrades to a
// nil result; this integration must never fail a request.
type SheetsClient struct {
	SpreadsheetID string
	Range         string
	credential    string
}

// NewSheetsClient builds a client from raw configuration. credential may be a
// literal service-account JSON document or a base64-encoded one.
func NewSheetsClient(spreadsheetID, credential, sheetRange string) *SheetsClient {
	return &SheetsClient{
		SpreadsheetID: spreadsheetID,
		Range:         sheetRange,
		credential:    credential,
	}
}

// AppendLead appends the lead as one row and returns the updated range, or
// nil when the integration is unconfigured or the append failed.
func (s *SheetsClient) AppendLead(ctx context.Context, lead models.Lead) *string {
	if s == nil || s.SpreadsheetID == "" || s.credential == "" {
		return nil
	}

	raw, ok := decodeCredential(s.credential)
	if !ok {
		// Unparseable credential counts as "not configured".
		return nil
	}

	conf, err := google.JWTConfigFromJSON(raw, sheets.SpreadsheetsScope)
	if err != nil {
		zap.L().Warn("sheets: invalid service account credential", zap.Error(err))
		return nil
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		zap.L().Warn("sheets: service init failed", zap.Error(err))
		return nil
	}

	values := &sheets.ValueRange{
		Values: [][]interface{}{{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Interest,
			lead.Source,
			lead.Notes,
		}},
	}

	resp, err := svc.Spreadsheets.Values.Append(s.SpreadsheetID, s.Range, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		zap.L().Warn("sheets: append failed", zap.Error(err))
		return nil
	}
	if resp.Updates == nil {
		return nil
	}

	updated := resp.Updates.UpdatedRange
	return &updated
}

// decodeCredential accepts a service-account document as literal JSON or as
// base64-encoded JSON, in that order.
func decodeCredential(credential string) ([]byte, bool) {
	raw := []byte(credential)
	if json.Valid(raw) {
		return raw, true
	}
	decoded, err := base64.StdEncoding.DecodeString(credential)
	if err != nil || !json.Valid(decoded) {
		return nil, false
	}
	return decoded, true
}
