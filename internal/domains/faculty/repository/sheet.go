package repository

import (
	"context"
	"strconv"

	"minutes-backend/internal/domains/faculty"
	"minutes-backend/internal/infrastructure/sheets"
	"minutes-backend/pkg/logger"
)

const (
	colSeqNo = 1 // 1-based sheet columns
	colDept  = 2
	colRank  = 3
	colName  = 4

	columnCount = 4
)

// sheetRepository maps faculty tab rows to typed roster members.
type sheetRepository struct {
	gateway sheets.Gateway
}

// NewSheetRepository creates the sheet-backed roster repository.
func NewSheetRepository(gateway sheets.Gateway) faculty.Repository {
	return &sheetRepository{gateway: gateway}
}

// List loads the roster. Any store failure degrades to an empty
// roster with a warning: the read path must never take the input
// path down with it.
func (r *sheetRepository) List(ctx context.Context) ([]faculty.Member, error) {
	rows, err := r.gateway.ReadAll(ctx, sheets.TabFaculty)
	if err != nil {
		logger.Warn("faculty roster load failed, returning empty roster", err)
		return []faculty.Member{}, nil
	}

	if len(rows) <= 1 {
		return []faculty.Member{}, nil
	}

	members := make([]faculty.Member, 0, len(rows)-1)
	for _, row := range rows[1:] {
		members = append(members, rowToMember(row))
	}
	return members, nil
}

func (r *sheetRepository) Append(ctx context.Context, member faculty.Member) error {
	if err := r.gateway.AppendRow(ctx, sheets.TabFaculty, memberToRow(member)); err != nil {
		logger.Warn("faculty append failed", err)
		return faculty.ErrStoreUnavailable
	}
	return nil
}

func (r *sheetRepository) Update(ctx context.Context, member faculty.Member) error {
	rowNum, err := r.gateway.FindRowByKey(ctx, sheets.TabFaculty, strconv.Itoa(member.SeqNo), colSeqNo)
	if err != nil {
		if err == sheets.ErrRowNotFound {
			return faculty.ErrMemberNotFound
		}
		logger.Warn("faculty lookup failed", err)
		return faculty.ErrStoreUnavailable
	}

	if err := r.gateway.UpdateRow(ctx, sheets.TabFaculty, rowNum, memberToRow(member)); err != nil {
		logger.Warn("faculty update failed", err)
		return faculty.ErrStoreUnavailable
	}
	return nil
}

func (r *sheetRepository) Delete(ctx context.Context, seqNo int) error {
	rowNum, err := r.gateway.FindRowByKey(ctx, sheets.TabFaculty, strconv.Itoa(seqNo), colSeqNo)
	if err != nil {
		if err == sheets.ErrRowNotFound {
			return faculty.ErrMemberNotFound
		}
		logger.Warn("faculty lookup failed", err)
		return faculty.ErrStoreUnavailable
	}

	if err := r.gateway.DeleteRow(ctx, sheets.TabFaculty, rowNum); err != nil {
		logger.Warn("faculty delete failed", err)
		return faculty.ErrStoreUnavailable
	}
	return nil
}

// rowToMember backfills short rows so a partially written sheet still
// yields a full typed record.
func rowToMember(row []string) faculty.Member {
	padded := make([]string, columnCount)
	copy(padded, row)

	seqNo, _ := strconv.Atoi(padded[colSeqNo-1])
	return faculty.Member{
		SeqNo:      seqNo,
		Department: padded[colDept-1],
		Rank:       faculty.Rank(padded[colRank-1]),
		Name:       padded[colName-1],
	}
}

func memberToRow(m faculty.Member) []interface{} {
	return []interface{}{m.SeqNo, m.Department, string(m.Rank), m.Name}
}
