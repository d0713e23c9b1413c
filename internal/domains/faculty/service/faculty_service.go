package service

import (
	"context"
	"strings"

	"minutes-backend/internal/domains/faculty"
)

// facultyService implements faculty.Service
type facultyService struct {
	repo faculty.Repository
}

// NewFacultyService creates a new roster service instance
func NewFacultyService(repo faculty.Repository) faculty.Service {
	return &facultyService{repo: repo}
}

func (s *facultyService) List(ctx context.Context) ([]faculty.Member, error) {
	return s.repo.List(ctx)
}

// Options renders the attendee selector labels in roster order.
func (s *facultyService) Options(ctx context.Context) ([]string, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]string, len(members))
	for i, m := range members {
		options[i] = m.Option()
	}
	return options, nil
}

func (s *facultyService) Create(ctx context.Context, req *faculty.CreateRequest) (*faculty.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member := faculty.Member{
		SeqNo:      req.SeqNo,
		Department: strings.TrimSpace(req.Department),
		Rank:       faculty.Rank(req.Rank),
		Name:       strings.TrimSpace(req.Name),
	}

	// Default sequence number: current roster size + 1.
	if member.SeqNo == 0 {
		members, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		member.SeqNo = len(members) + 1
	}

	if err := s.repo.Append(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *facultyService) Update(ctx context.Context, seqNo int, req *faculty.UpdateRequest) (*faculty.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	member := faculty.Member{
		SeqNo:      seqNo,
		Department: strings.TrimSpace(req.Department),
		Rank:       faculty.Rank(req.Rank),
		Name:       strings.TrimSpace(req.Name),
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete removes a roster entry. Historical minutes that reference the
// member are left untouched.
func (s *facultyService) Delete(ctx context.Context, seqNo int) error {
	return s.repo.Delete(ctx, seqNo)
}
