package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/faizramdhannn/Bazzar-2026/config"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// CellUpdate writes a single value to one cell address, e.g. "master_bazzar!E7".
type CellUpdate struct {
	Range string
	Value interface{}
}

// ValuesAPI is the slice of the spreadsheet service this system needs:
// range read, row append and batched single-cell updates.
type ValuesAPI interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]interface{}) error
	BatchUpdate(ctx context.Context, spreadsheetID string, updates []CellUpdate) error
}

// Client implements ValuesAPI against the Google Sheets v4 values API.
type Client struct {
	svc *sheetsapi.Service
}

// NewClient builds an authenticated sheets client. A credentials file path
// wins when set; otherwise the inline service-account email and private key
// are used.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheetsapi.SpreadsheetsScope)}

	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.PrivateKey != "":
		blob, err := serviceAccountJSON(cfg.ServiceAccountEmail, cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(blob))
	default:
		return nil, fmt.Errorf("GOOGLE_PRIVATE_KEY or GOOGLE_APPLICATION_CREDENTIALS must be set")
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Get reads a range and returns its rows as strings.
func (c *Client) Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	defer observe("get", time.Now())

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// Append appends rows after the last non-empty row of the range.
func (c *Client) Append(ctx context.Context, spreadsheetID, writeRange string, rows [][]interface{}) error {
	defer observe("append", time.Now())

	_, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, writeRange, &sheetsapi.ValueRange{
		Values: rows,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", writeRange, err)
	}
	return nil
}

// BatchUpdate writes all cell updates in one network call.
func (c *Client) BatchUpdate(ctx context.Context, spreadsheetID string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	defer observe("batch_update", time.Now())

	data := make([]*sheetsapi.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheetsapi.ValueRange{
			Range:  u.Range,
			Values: [][]interface{}{{u.Value}},
		})
	}

	_, err := c.svc.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheetsapi.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets batch update: %w", err)
	}
	return nil
}

func observe(operation string, start time.Time) {
	util.SheetRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// serviceAccountJSON assembles a credentials blob from an inline key pair.
func serviceAccountJSON(email, privateKey string) ([]byte, error) {
	if email == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL must be set when using an inline key")
	}
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": email,
		"private_key":  NormalizePrivateKey(privateKey),
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}

// NormalizePrivateKey strips optional surrounding quotes and turns escaped
// newlines into real ones, matching how the key survives an env file.
func NormalizePrivateKey(key string) string {
	if strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) >= 2 {
		key = key[1 : len(key)-1]
	}
	return strings.ReplaceAll(key, `\n`, "\n")
}
