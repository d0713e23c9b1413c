package service

import (
	"context"
	"sort"

	"minutes-backend/internal/domains/export"
	"minutes-backend/internal/domains/minutes"
)

// exportService implements export.Service
type exportService struct {
	repo     minutes.Repository
	fontPath string
}

// NewExportService creates a new export service instance
func NewExportService(repo minutes.Repository, fontPath string) export.Service {
	return &exportService{repo: repo, fontPath: fontPath}
}

func (s *exportService) CSV(ctx context.Context, req *export.Request) ([]byte, error) {
	records, err := s.selectRecords(ctx, req)
	if err != nil {
		return nil, err
	}
	return export.RenderCSV(records)
}

func (s *exportService) PDF(ctx context.Context, req *export.Request) ([]byte, error) {
	records, err := s.selectRecords(ctx, req)
	if err != nil {
		return nil, err
	}
	return export.RenderPDF(records, s.fontPath)
}

func (s *exportService) XLSX(ctx context.Context, req *export.Request) ([]byte, error) {
	records, err := s.selectRecords(ctx, req)
	if err != nil {
		return nil, err
	}
	return export.RenderXLSX(records)
}

// selectRecords loads the stored meetings, keeps those matching the
// requested dates (all of them when no dates were given), and orders
// them ascending by date so the printed report reads chronologically.
func (s *exportService) selectRecords(ctx context.Context, req *export.Request) ([]minutes.Minutes, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.Dates) > 0 {
		wanted := make(map[string]bool, len(req.Dates))
		for _, d := range req.Dates {
			wanted[d] = true
		}
		filtered := records[:0:0]
		for _, rec := range records {
			if wanted[rec.Date] {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		return nil, export.ErrNothingToExport
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}
