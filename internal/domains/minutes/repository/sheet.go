package repository

import (
	"context"
	"strconv"

	"minutes-backend/internal/domains/minutes"
	"minutes-backend/internal/infrastructure/sheets"
	"minutes-backend/pkg/logger"
)

const (
	colID           = 1 // 1-based sheet columns
	colSeqNo        = 2
	colDate         = 3
	colTimeRange    = 4
	colPlace        = 5
	colTopic        = 6
	colAttendeeText = 7
	colAttendeeJSON = 8
	colContent      = 9
	colKeywords     = 10

	columnCount = 10
)

// sheetRepository maps minutes tab rows to typed records.
type sheetRepository struct {
	gateway sheets.Gateway
}

// NewSheetRepository creates the sheet-backed minutes repository.
func NewSheetRepository(gateway sheets.Gateway) minutes.Repository {
	return &sheetRepository{gateway: gateway}
}

// List loads every record. Store failures and a corrupted header
// (the ID column missing from row one) degrade to an empty result:
// the read path never surfaces a schema error to the end user.
func (r *sheetRepository) List(ctx context.Context) ([]minutes.Minutes, error) {
	rows, err := r.gateway.ReadAll(ctx, sheets.TabMinutes)
	if err != nil {
		logger.Warn("minutes load failed, returning empty list", err)
		return []minutes.Minutes{}, nil
	}

	if len(rows) == 0 {
		return []minutes.Minutes{}, nil
	}

	if !headerHasID(rows[0]) {
		logger.Warn("minutes header corrupted (ID column missing), returning empty list", nil)
		return []minutes.Minutes{}, nil
	}

	records := make([]minutes.Minutes, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, rowToMinutes(row))
	}
	return records, nil
}

func (r *sheetRepository) GetByID(ctx context.Context, id string) (*minutes.Minutes, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (r *sheetRepository) Append(ctx context.Context, record minutes.Minutes) error {
	if err := r.gateway.AppendRow(ctx, sheets.TabMinutes, minutesToRow(record)); err != nil {
		logger.Warn("minutes append failed", err)
		return minutes.ErrStoreUnavailable
	}
	return nil
}

func (r *sheetRepository) UpdateByID(ctx context.Context, id string, record minutes.Minutes) error {
	return r.updateByKey(ctx, id, colID, record)
}

func (r *sheetRepository) UpdateByDate(ctx context.Context, date string, record minutes.Minutes) error {
	return r.updateByKey(ctx, date, colDate, record)
}

func (r *sheetRepository) updateByKey(ctx context.Context, key string, column int, record minutes.Minutes) error {
	rowNum, err := r.gateway.FindRowByKey(ctx, sheets.TabMinutes, key, column)
	if err != nil {
		if err == sheets.ErrRowNotFound {
			return minutes.ErrMinutesNotFound
		}
		logger.Warn("minutes lookup failed", err)
		return minutes.ErrStoreUnavailable
	}

	if err := r.gateway.UpdateRow(ctx, sheets.TabMinutes, rowNum, minutesToRow(record)); err != nil {
		logger.Warn("minutes update failed", err)
		return minutes.ErrStoreUnavailable
	}
	return nil
}

func (r *sheetRepository) DeleteByID(ctx context.Context, id string) error {
	rowNum, err := r.gateway.FindRowByKey(ctx, sheets.TabMinutes, id, colID)
	if err != nil {
		if err == sheets.ErrRowNotFound {
			return minutes.ErrMinutesNotFound
		}
		logger.Warn("minutes lookup failed", err)
		return minutes.ErrStoreUnavailable
	}

	if err := r.gateway.DeleteRow(ctx, sheets.TabMinutes, rowNum); err != nil {
		logger.Warn("minutes delete failed", err)
		return minutes.ErrStoreUnavailable
	}
	return nil
}

func headerHasID(header []string) bool {
	for _, col := range header {
		if col == "ID" {
			return true
		}
	}
	return false
}

// rowToMinutes backfills short rows so a partially written sheet still
// yields a full typed record.
func rowToMinutes(row []string) minutes.Minutes {
	padded := make([]string, columnCount)
	copy(padded, row)

	seqNo, _ := strconv.Atoi(padded[colSeqNo-1])
	return minutes.Minutes{
		ID:           padded[colID-1],
		SeqNo:        seqNo,
		Date:         padded[colDate-1],
		TimeRange:    padded[colTimeRange-1],
		Place:        padded[colPlace-1],
		Topic:        padded[colTopic-1],
		AttendeeText: padded[colAttendeeText-1],
		AttendeeJSON: padded[colAttendeeJSON-1],
		Content:      padded[colContent-1],
		Keywords:     padded[colKeywords-1],
	}
}

func minutesToRow(m minutes.Minutes) []interface{} {
	return []interface{}{
		m.ID, m.SeqNo, m.Date, m.TimeRange, m.Place,
		m.Topic, m.AttendeeText, m.AttendeeJSON, m.Content, m.Keywords,
	}
}
