package service

import (
	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/util"

	"go.uber.org/zap"
)

// PoolService manages the in-memory question pool for one session.
type PoolService interface {
	AddQuestion(req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id string) (*dto.QuestionResponse, error)
	ListQuestions() *dto.PoolResponse
	UpdateQuestion(id string, req *dto.QuestionRequest) (*dto.QuestionResponse, error)
	RemoveQuestion(id string) error
	ClearPool()
}

// poolService implements PoolService
type poolService struct {
	pool *domain.Pool
}

// NewPoolService creates a new instance of poolService
func NewPoolService(pool *domain.Pool) PoolService {
	return &poolService{pool: pool}
}

// AddQuestion implements PoolService. Manual entry is strict: the record
// must satisfy the data-model invariants before it enters the pool, and the
// answer is stored in canonical sorted-letter form.
func (s *poolService) AddQuestion(req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	q := toDomainQuestion(req)
	if errs := q.Validate(); len(errs) > 0 {
		return nil, errs
	}
	canonicalizeAnswer(&q)
	q.ID = util.NewULID()

	stored, err := s.pool.Append(q)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Question added to pool",
		zap.String("id", stored.ID),
		zap.String("type", string(stored.Type)),
		zap.Int("pool_size", s.pool.Len()),
	)
	resp := toQuestionResponse(stored)
	return &resp, nil
}

// GetQuestion implements PoolService
func (s *poolService) GetQuestion(id string) (*dto.QuestionResponse, error) {
	q, ok := s.pool.Get(id)
	if !ok {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	resp := toQuestionResponse(q)
	return &resp, nil
}

// ListQuestions implements PoolService
func (s *poolService) ListQuestions() *dto.PoolResponse {
	questions := s.pool.List()
	resp := &dto.PoolResponse{
		Count:     len(questions),
		Questions: make([]dto.QuestionResponse, len(questions)),
	}
	for i, q := range questions {
		resp.Questions[i] = toQuestionResponse(q)
	}
	return resp
}

// UpdateQuestion implements PoolService. Edits replace the whole value at
// the stored identity; the ID and sequence number are preserved.
func (s *poolService) UpdateQuestion(id string, req *dto.QuestionRequest) (*dto.QuestionResponse, error) {
	q := toDomainQuestion(req)
	if errs := q.Validate(); len(errs) > 0 {
		return nil, errs
	}
	canonicalizeAnswer(&q)

	stored, err := s.pool.Replace(id, q)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Question replaced", zap.String("id", id))
	resp := toQuestionResponse(stored)
	return &resp, nil
}

// RemoveQuestion implements PoolService
func (s *poolService) RemoveQuestion(id string) error {
	if err := s.pool.Remove(id); err != nil {
		return err
	}
	logger.Get().Info("Question removed", zap.String("id", id), zap.Int("pool_size", s.pool.Len()))
	return nil
}

// ClearPool implements PoolService
func (s *poolService) ClearPool() {
	s.pool.Clear()
	logger.Get().Info("Question pool cleared")
}

// canonicalizeAnswer rewrites a choice answer as sorted unique letters.
// Fill-in answers are free text and stay as entered.
func canonicalizeAnswer(q *domain.Question) {
	if q.Type.IsChoice() {
		q.Answer = domain.AnswerLetters(domain.AnswerIndices(q.Answer, len(q.Options)))
	}
}

func toDomainQuestion(req *dto.QuestionRequest) domain.Question {
	qType, _ := domain.ParseQuestionType(req.Type)
	return domain.Question{
		Type:    qType,
		Body:    req.Body,
		Options: req.Options,
		Answer:  req.Answer,
		Image:   req.Image,
		Class: domain.Classification{
			Source:  req.Source,
			Chapter: req.Chapter,
			Unit:    req.Unit,
		},
	}
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:       q.ID,
		Seq:      q.Seq,
		Type:     string(q.Type),
		Body:     q.Body,
		Options:  q.Options,
		Answer:   q.Answer,
		HasImage: len(q.Image) > 0,
		Source:   q.Class.Source,
		Chapter:  q.Class.Chapter,
		Unit:     q.Class.Unit,
	}
}
