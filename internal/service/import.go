package service

import (
	"github.com/ooh112526-sudo/physics-exam-generator/internal/domain"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/dto"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/importer"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/logger"
	"github.com/ooh112526-sudo/physics-exam-generator/internal/util"

	"go.uber.org/zap"
)

// ImportService appends questions parsed from a tagged document to the pool.
type ImportService interface {
	ImportDocument(doc string) (*dto.ImportResponse, error)
	Template() string
}

// importService implements ImportService
type importService struct {
	parser *importer.Parser
	pool   *domain.Pool
}

// NewImportService creates a new instance of importService
func NewImportService(parser *importer.Parser, pool *domain.Pool) ImportService {
	return &importService{parser: parser, pool: pool}
}

// ImportDocument implements ImportService. The document is parsed in full
// before anything is appended, so a failed parse leaves the pool untouched.
func (s *importService) ImportDocument(doc string) (*dto.ImportResponse, error) {
	questions, err := s.parser.Parse(doc)
	if err != nil {
		logger.Get().Warn("Document import yielded no questions", zap.Error(err))
		return nil, err
	}

	for _, q := range questions {
		q.ID = util.NewULID()
		if _, err := s.pool.Append(q); err != nil {
			return nil, domain.NewInternalError("Failed to append imported question", err)
		}
	}

	logger.Get().Info("Document imported",
		zap.Int("imported", len(questions)),
		zap.Int("pool_size", s.pool.Len()),
	)
	return &dto.ImportResponse{
		Imported: len(questions),
		Count:    s.pool.Len(),
	}, nil
}

// Template implements ImportService
func (s *importService) Template() string {
	return importer.SampleDocument
}
