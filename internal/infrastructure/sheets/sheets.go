package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"minutes-backend/internal/config"
)

// Tab names and header rows match the spreadsheet the original
// working group already uses, so existing documents stay readable.
const (
	TabFaculty  = "재직교수"
	TabMinutes  = "회의록"
	TabSettings = "설정"
)

var tabHeaders = map[string][]string{
	TabFaculty:  {"연번", "학과", "직급", "이름"},
	TabMinutes:  {"ID", "연번", "날짜", "시간", "장소", "주제", "참석자_텍스트", "참석자_JSON", "내용", "키워드"},
	TabSettings: {"Key", "Value"},
}

// HeaderFor returns the canonical header row for a known tab.
func HeaderFor(tab string) []string {
	header := tabHeaders[tab]
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// ErrRowNotFound is returned by FindRowByKey when no row matches.
var ErrRowNotFound = errors.New("sheets: row not found")

// Gateway is the row-level contract against the remote spreadsheet.
// Row numbers are 1-based spreadsheet positions including the header.
type Gateway interface {
	// ReadAll returns every row of a tab including the header row.
	// A missing tab is created with its header first.
	ReadAll(ctx context.Context, tab string) ([][]string, error)

	// AppendRow appends one row after the last non-empty row.
	AppendRow(ctx context.Context, tab string, row []interface{}) error

	// FindRowByKey scans one column (1-based) for an exact string match
	// and returns the 1-based row position, or ErrRowNotFound.
	FindRowByKey(ctx context.Context, tab string, key string, column int) (int, error)

	// UpdateRow overwrites the row at the given position.
	UpdateRow(ctx context.Context, tab string, rowNum int, row []interface{}) error

	// DeleteRow removes the row at the given position.
	DeleteRow(ctx context.Context, tab string, rowNum int) error

	// ResetTab clears a tab and rewrites its header row. Used to
	// self-heal the settings tab when its header is corrupted.
	ResetTab(ctx context.Context, tab string) error
}

// Client implements Gateway over the Google Sheets API using a
// service-account credential.
type Client struct {
	srv           *sheets.Service
	spreadsheetID string

	// sheetIDs caches tab title -> numeric sheet ID, needed for
	// structural requests (row deletion, tab creation).
	sheetIDs map[string]int64
}

// NewClient opens the configured spreadsheet.
func NewClient(ctx context.Context, cfg config.SpreadsheetConfig) (*Client, error) {
	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}

	return &Client{
		srv:           srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// refreshSheetIDs reloads the tab title -> sheet ID cache.
func (c *Client) refreshSheetIDs(ctx context.Context) error {
	spreadsheet, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve spreadsheet metadata: %w", err)
	}

	ids := make(map[string]int64, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			ids[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}
	c.sheetIDs = ids
	return nil
}

// ensureTab creates the tab with its header row if it does not exist
// yet, and returns its numeric sheet ID.
func (c *Client) ensureTab(ctx context.Context, tab string) (int64, error) {
	if id, ok := c.sheetIDs[tab]; ok {
		return id, nil
	}
	if err := c.refreshSheetIDs(ctx); err != nil {
		return 0, err
	}
	if id, ok := c.sheetIDs[tab]; ok {
		return id, nil
	}

	addReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: tab},
			},
		}},
	}
	resp, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, addReq).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to create tab %q: %w", tab, err)
	}

	var sheetID int64
	if len(resp.Replies) > 0 && resp.Replies[0].AddSheet != nil && resp.Replies[0].AddSheet.Properties != nil {
		sheetID = resp.Replies[0].AddSheet.Properties.SheetId
	}
	c.sheetIDs[tab] = sheetID

	if header := tabHeaders[tab]; len(header) > 0 {
		row := make([]interface{}, len(header))
		for i, h := range header {
			row[i] = h
		}
		if err := c.appendValues(ctx, tab, row); err != nil {
			return 0, fmt.Errorf("unable to write header for tab %q: %w", tab, err)
		}
	}

	return sheetID, nil
}

func (c *Client) ReadAll(ctx context.Context, tab string) ([][]string, error) {
	if _, err := c.ensureTab(ctx, tab); err != nil {
		return nil, err
	}

	resp, err := c.srv.Spreadsheets.Values.
		Get(c.spreadsheetID, fmt.Sprintf("%s!A:Z", tab)).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from tab %q: %w", tab, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			if cell != nil {
				row[i] = fmt.Sprintf("%v", cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) AppendRow(ctx context.Context, tab string, row []interface{}) error {
	if _, err := c.ensureTab(ctx, tab); err != nil {
		return err
	}
	return c.appendValues(ctx, tab, NormalizeRow(row)...)
}

func (c *Client) appendValues(ctx context.Context, tab string, row ...interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := c.srv.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("%s!A:Z", tab), valueRange).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to append row to tab %q: %w", tab, err)
	}
	return nil
}

func (c *Client) FindRowByKey(ctx context.Context, tab string, key string, column int) (int, error) {
	if _, err := c.ensureTab(ctx, tab); err != nil {
		return 0, err
	}

	letter := columnIndexToLetter(column - 1)
	resp, err := c.srv.Spreadsheets.Values.
		Get(c.spreadsheetID, fmt.Sprintf("%s!%s:%s", tab, letter, letter)).
		Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to scan column %s of tab %q: %w", letter, tab, err)
	}

	for i, raw := range resp.Values {
		if len(raw) > 0 && raw[0] != nil && fmt.Sprintf("%v", raw[0]) == key {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}

func (c *Client) UpdateRow(ctx context.Context, tab string, rowNum int, row []interface{}) error {
	if _, err := c.ensureTab(ctx, tab); err != nil {
		return err
	}

	cleaned := NormalizeRow(row)
	endCol := columnIndexToLetter(len(cleaned) - 1)
	cellRange := fmt.Sprintf("%s!A%d:%s%d", tab, rowNum, endCol, rowNum)

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{cleaned},
	}

	_, err := c.srv.Spreadsheets.Values.
		Update(c.spreadsheetID, cellRange, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to update row %d of tab %q: %w", rowNum, tab, err)
	}
	return nil
}

func (c *Client) DeleteRow(ctx context.Context, tab string, rowNum int) error {
	sheetID, err := c.ensureTab(ctx, tab)
	if err != nil {
		return err
	}

	deleteRequest := &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{
			Range: &sheets.DimensionRange{
				SheetId:    sheetID,
				Dimension:  "ROWS",
				StartIndex: int64(rowNum - 1), // 0-based
				EndIndex:   int64(rowNum),     // exclusive
			},
		},
	}

	_, err = c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{deleteRequest},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to delete row %d of tab %q: %w", rowNum, tab, err)
	}
	return nil
}

func (c *Client) ResetTab(ctx context.Context, tab string) error {
	if _, err := c.ensureTab(ctx, tab); err != nil {
		return err
	}

	_, err := c.srv.Spreadsheets.Values.
		Clear(c.spreadsheetID, fmt.Sprintf("%s!A:Z", tab), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to clear tab %q: %w", tab, err)
	}

	header := tabHeaders[tab]
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return c.appendValues(ctx, tab, row...)
}

// NormalizeRow reduces every cell to a plain int or string. The
// store's client rejects wide integer types coming out of interface
// conversions, so everything numeric is flattened first.
func NormalizeRow(row []interface{}) []interface{} {
	cleaned := make([]interface{}, len(row))
	for i, v := range row {
		switch n := v.(type) {
		case int:
			cleaned[i] = n
		case int32:
			cleaned[i] = int(n)
		case int64:
			cleaned[i] = int(n)
		case float64:
			if n == float64(int(n)) {
				cleaned[i] = int(n)
			} else {
				cleaned[i] = fmt.Sprintf("%v", n)
			}
		case string:
			cleaned[i] = n
		case nil:
			cleaned[i] = ""
		default:
			cleaned[i] = fmt.Sprintf("%v", v)
		}
	}
	return cleaned
}

func columnIndexToLetter(index int) string {
	var result strings.Builder
	for index >= 0 {
		result.WriteByte(byte('A' + index%26))
		index = index/26 - 1
	}

	runes := []rune(result.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
