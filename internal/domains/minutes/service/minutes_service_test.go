package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minutes-backend/internal/domains/minutes"
)

// fakeRepo is an in-memory minutes.Repository.
type fakeRepo struct {
	records []minutes.Minutes
}

func (r *fakeRepo) List(ctx context.Context) ([]minutes.Minutes, error) {
	out := make([]minutes.Minutes, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*minutes.Minutes, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Append(ctx context.Context, record minutes.Minutes) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeRepo) UpdateByID(ctx context.Context, id string, record minutes.Minutes) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records[i] = record
			return nil
		}
	}
	return minutes.ErrMinutesNotFound
}

func (r *fakeRepo) UpdateByDate(ctx context.Context, date string, record minutes.Minutes) error {
	for i, rec := range r.records {
		if rec.Date == date {
			r.records[i] = record
			return nil
		}
	}
	return minutes.ErrMinutesNotFound
}

func (r *fakeRepo) DeleteByID(ctx context.Context, id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return minutes.ErrMinutesNotFound
}

// fakeComposer returns a canned draft.
type fakeComposer struct {
	reply string
}

func (c *fakeComposer) Draft(ctx context.Context, topic, keywords string) string {
	return c.reply
}

func newTestService(repo *fakeRepo, composer minutes.DraftComposer) *minutesService {
	if composer == nil {
		composer = &fakeComposer{reply: "- 논의 내용 정리함"}
	}
	s := NewMinutesService(repo, composer).(*minutesService)
	s.now = func() time.Time {
		return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func submitRequest() *minutes.SubmitRequest {
	return &minutes.SubmitRequest{
		Date:           "2024-03-10",
		TimeRange:      "12:00 ~ 13:00",
		Place:          "본관 201호",
		Topic:          "교수법 세미나",
		SelectedLabels: []string{"김철수 (컴퓨터공학과/교수)"},
		Content:        "- 사례 공유함",
		Keywords:       "교수법, 사례",
	}
}

func stored(id, date string) minutes.Minutes {
	return minutes.Minutes{
		ID:           id,
		SeqNo:        1,
		Date:         date,
		TimeRange:    "09:00 ~ 10:00",
		Place:        "본관 201호",
		Topic:        "기존 회의",
		AttendeeText: "이영희(전자공학과)",
		AttendeeJSON: `[{"이름":"이영희","학과":"전자공학과","직급":"부교수"}]`,
		Content:      "기존 내용",
		Keywords:     "기존",
	}
}

func TestSubmitFreshDateReportsConfirmStep(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240201090000", "2024-02-01")}}
	svc := newTestService(repo, nil)

	outcome, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, minutes.StepConfirm, outcome.Wizard.Step)
	assert.Nil(t, outcome.Saved)
	assert.Len(t, repo.records, 1, "pending submit must not write")
}

func TestSubmitConfirmAppendsWithNextSequence(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240201090000", "2024-02-01")}}
	svc := newTestService(repo, nil)

	req := submitRequest()
	req.Resolution = "confirm"

	outcome, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, minutes.StepSuccess, outcome.Wizard.Step)
	require.NotNil(t, outcome.Saved)
	assert.Equal(t, "20240310120000", outcome.Saved.ID)
	assert.Equal(t, 2, outcome.Saved.SeqNo)
	assert.Equal(t, "김철수(컴퓨터공학과)", outcome.Saved.AttendeeText)
	require.Len(t, repo.records, 2)
	assert.Equal(t, "2024-03-10", repo.records[1].Date)
}

func TestSubmitDuplicateDateReportsCheckStep(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240310090000", "2024-03-10")}}
	svc := newTestService(repo, nil)

	outcome, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.Equal(t, minutes.StepCheckDuplicate, outcome.Wizard.Step)
	assert.Nil(t, outcome.Saved)
	assert.Len(t, repo.records, 1)
}

func TestSubmitOverwriteKeepsSingleRecord(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240310090000", "2024-03-10")}}
	svc := newTestService(repo, nil)

	req := submitRequest()
	req.Resolution = "overwrite"

	outcome, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, minutes.StepSuccess, outcome.Wizard.Step)
	require.Len(t, repo.records, 1)
	assert.Equal(t, "교수법 세미나", repo.records[0].Topic)
	assert.Equal(t, "20240310120000", repo.records[0].ID)
}

func TestSubmitAppendKeepsBothRecords(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240310090000", "2024-03-10")}}
	svc := newTestService(repo, nil)

	req := submitRequest()
	req.Resolution = "append"

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.records, 2)
	assert.Equal(t, "2024-03-10", repo.records[0].Date)
	assert.Equal(t, "2024-03-10", repo.records[1].Date)
	assert.Equal(t, 2, repo.records[1].SeqNo)
}

func TestSubmitAbortWritesNothing(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{stored("20240310090000", "2024-03-10")}}
	svc := newTestService(repo, nil)

	req := submitRequest()
	req.Resolution = "abort"

	outcome, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, minutes.StepInput, outcome.Wizard.Step)
	assert.Nil(t, outcome.Saved)
	assert.Len(t, repo.records, 1)
}

func TestSubmitWithoutAttendees(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	req := submitRequest()
	req.SelectedLabels = nil

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, minutes.ErrNoAttendees)
}

func TestSubmitInvalidResolutionOnFreshDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, nil)

	// Overwrite is only an answer to a reported duplicate.
	req := submitRequest()
	req.Resolution = "overwrite"

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, minutes.ErrInvalidTransition)
	assert.Empty(t, repo.records)
}

func TestUpdateEmptySelectionKeepsAttendees(t *testing.T) {
	rec := stored("20240310090000", "2024-03-10")
	repo := &fakeRepo{records: []minutes.Minutes{rec}}
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), rec.ID, &minutes.UpdateRequest{
		Date:      "2024-03-10",
		TimeRange: "09:00 ~ 10:00",
		Place:     "본관 201호",
		Topic:     "제목 수정",
		Content:   "내용 수정",
	})
	require.NoError(t, err)

	got := repo.records[0]
	assert.Equal(t, "제목 수정", got.Topic)
	assert.Equal(t, rec.AttendeeText, got.AttendeeText)
	assert.Equal(t, rec.AttendeeJSON, got.AttendeeJSON)
}

func TestUpdateCarriesKeywordsForward(t *testing.T) {
	rec := stored("20240310090000", "2024-03-10")
	repo := &fakeRepo{records: []minutes.Minutes{rec}}
	svc := newTestService(repo, nil)

	updated, err := svc.Update(context.Background(), rec.ID, &minutes.UpdateRequest{
		Date:      "2024-03-10",
		TimeRange: "09:00 ~ 10:00",
		Place:     "본관 201호",
		Topic:     "제목 수정",
		Content:   "내용 수정",
	})
	require.NoError(t, err)
	assert.Equal(t, "기존", updated.Keywords)

	newKeywords := "새 키워드"
	updated, err = svc.Update(context.Background(), rec.ID, &minutes.UpdateRequest{
		Date:      "2024-03-10",
		TimeRange: "09:00 ~ 10:00",
		Place:     "본관 201호",
		Topic:     "제목 수정",
		Content:   "내용 수정",
		Keywords:  &newKeywords,
	})
	require.NoError(t, err)
	assert.Equal(t, "새 키워드", updated.Keywords)
}

func TestUpdatePreservesIdentity(t *testing.T) {
	rec := stored("20240310090000", "2024-03-10")
	repo := &fakeRepo{records: []minutes.Minutes{rec}}
	svc := newTestService(repo, nil)

	updated, err := svc.Update(context.Background(), rec.ID, &minutes.UpdateRequest{
		Date:      "2024-04-01",
		TimeRange: "10:00 ~ 11:00",
		Place:     "신관 102호",
		Topic:     "제목 수정",
		Content:   "내용 수정",
	})
	require.NoError(t, err)

	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, rec.SeqNo, updated.SeqNo)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)

	_, err := svc.Update(context.Background(), "nope", &minutes.UpdateRequest{
		Date:      "2024-03-10",
		TimeRange: "09:00 ~ 10:00",
		Place:     "본관 201호",
		Topic:     "제목",
		Content:   "내용",
	})
	assert.ErrorIs(t, err, minutes.ErrMinutesNotFound)
}

func TestListSortsNewestFirst(t *testing.T) {
	repo := &fakeRepo{records: []minutes.Minutes{
		stored("20240201090000", "2024-02-01"),
		stored("20240310090000", "2024-03-10"),
		stored("20240115090000", "2024-01-15"),
	}}
	svc := newTestService(repo, nil)

	records, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2024-03-10", records[0].Date)
	assert.Equal(t, "2024-02-01", records[1].Date)
	assert.Equal(t, "2024-01-15", records[2].Date)
}

func TestSearchFields(t *testing.T) {
	a := stored("20240201090000", "2024-02-01")
	a.Topic = "교수법 세미나"
	a.Content = "사례 공유"
	b := stored("20240310090000", "2024-03-10")
	b.Topic = "성적 평가"
	b.AttendeeText = "김철수(컴퓨터공학과)"
	repo := &fakeRepo{records: []minutes.Minutes{a, b}}
	svc := newTestService(repo, nil)

	got, err := svc.Search(context.Background(), minutes.SearchTopic, "교수법")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = svc.Search(context.Background(), minutes.SearchName, "김철수")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	got, err = svc.Search(context.Background(), minutes.SearchDept, "컴퓨터공학과")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.Search(context.Background(), minutes.SearchAll, "사례")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = svc.Search(context.Background(), minutes.SearchAll, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDraftPlaceholderFlag(t *testing.T) {
	repo := &fakeRepo{}

	svc := newTestService(repo, &fakeComposer{reply: "- 핵심 논의 정리함"})
	resp, err := svc.Draft(context.Background(), &minutes.DraftRequest{Topic: "교수법"})
	require.NoError(t, err)
	assert.False(t, resp.Placeholder)

	svc = newTestService(repo, &fakeComposer{reply: "AI 생성 오류: quota exceeded"})
	resp, err = svc.Draft(context.Background(), &minutes.DraftRequest{Topic: "교수법"})
	require.NoError(t, err)
	assert.True(t, resp.Placeholder)
	assert.Contains(t, resp.Content, "AI 생성 오류")
}

func TestDeleteRemovesRecord(t *testing.T) {
	rec := stored("20240310090000", "2024-03-10")
	repo := &fakeRepo{records: []minutes.Minutes{rec}}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), rec.ID))
	assert.Empty(t, repo.records)
}
