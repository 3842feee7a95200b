package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ooh112526-sudo/physics-exam-generator/internal/cache"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/config"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/render"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/util"

	"go.uber.org/zap"
)

const (
	artifactExam      = "exam"
	artifactAnswerKey = "answers"
)

// ExportService turns a pool selection into a staged pair of artifacts: the
// exam paper and its answer key. Each export draws an independent shuffle;
// the stored pool records are never modified.
type ExportService interface {
	CreateExport(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error)
	GetExamPaper(ctx context.Context, exportID string) (string, error)
	GetAnswerKey(ctx context.Context, exportID string) (string, error)
}

// exportService implements ExportService
type exportService struct {
	pool     *domain.Pool
	shuffler *domain.Shuffler
	cache    domain.Cache
	cfg      *config.Config
}

// NewExportService creates a new instance of exportService
func NewExportService(pool *domain.Pool, shuffler *domain.Shuffler, cacheAdapter domain.Cache, cfg *config.Config) ExportService {
	return &exportService{
		pool:     pool,
		shuffler: shuffler,
		cache:    cacheAdapter,
		cfg:      cfg,
	}
}

// CreateExport implements ExportService
func (s *exportService) CreateExport(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error) {
	selected, err := s.selectQuestions(req.QuestionIDs)
	if err != nil {
		return nil, err
	}

	shuffle := req.ShuffleEnabled()
	processed := make([]domain.Question, len(selected))
	for i, q := range selected {
		if shuffle {
			processed[i] = s.shuffler.Shuffle(q)
		} else {
			processed[i] = q
		}
	}

	title := req.Title
	if title == "" {
		title = s.cfg.Exam.Title
	}
	renderer := render.NewRenderer(title)
	examPaper := renderer.RenderExam(processed)
	answerKey := renderer.RenderAnswerKey(processed)

	exportID := util.NewULID()
	ttl := s.cfg.Exam.ExportTTL
	if err := s.cache.Set(ctx, artifactKey(artifactExam, exportID), string(examPaper), ttl); err != nil {
		return nil, domain.NewInternalError("Failed to stage exam paper", err)
	}
	if err := s.cache.Set(ctx, artifactKey(artifactAnswerKey, exportID), string(answerKey), ttl); err != nil {
		return nil, domain.NewInternalError("Failed to stage answer key", err)
	}

	logger.Get().Info("Export staged",
		zap.String("export_id", exportID),
		zap.Int("questions", len(processed)),
		zap.Bool("shuffle", shuffle),
	)
	return &dto.ExportResponse{
		ExportID:      exportID,
		QuestionCount: len(processed),
		ExamURL:       fmt.Sprintf("/api/exports/%s/exam", exportID),
		AnswerKeyURL:  fmt.Sprintf("/api/exports/%s/answers", exportID),
	}, nil
}

// GetExamPaper implements ExportService
func (s *exportService) GetExamPaper(ctx context.Context, exportID string) (string, error) {
	return s.getArtifact(ctx, artifactExam, exportID)
}

// GetAnswerKey implements ExportService
func (s *exportService) GetAnswerKey(ctx context.Context, exportID string) (string, error) {
	return s.getArtifact(ctx, artifactAnswerKey, exportID)
}

func (s *exportService) getArtifact(ctx context.Context, kind, exportID string) (string, error) {
	val, err := s.cache.Get(ctx, artifactKey(kind, exportID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return "", domain.NewExportNotFoundError(exportID)
		}
		return "", domain.NewInternalError("Failed to fetch export artifact", err)
	}
	return val, nil
}

// selectQuestions resolves the requested subset: an empty selection means
// the whole pool in entry order; an explicit list keeps the given order.
func (s *exportService) selectQuestions(ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		all := s.pool.List()
		if len(all) == 0 {
			return nil, domain.NewInvalidInputError("question pool is empty")
		}
		return all, nil
	}

	selected := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		q, ok := s.pool.Get(id)
		if !ok {
			return nil, domain.NewQuestionNotFoundError(id)
		}
		selected = append(selected, q)
	}
	return selected, nil
}

func artifactKey(kind, exportID string) string {
	return cache.GenerateCacheKey("export", kind, exportID)
}
