package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malith-nethsiri/valuerpro-backend/pkg/db"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/db/models"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/enums"
	pkgerrors "github.com/malith-nethsiri/valuerpro-backend/pkg/errors"
	"github.com/malith-nethsiri/valuerpro-backend/pkg/pagination"
)

const notFoundMessage = "Report not found"

// Service defines the behavior needed by the reports controller.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateReportInput) (*ReportDTO, error)
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*ReportDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateReportInput) (*ReportDTO, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	GeneratePDF(ctx context.Context, id, userID uuid.UUID) (*GenerateFileResponse, error)
	GenerateDocx(ctx context.Context, id, userID uuid.UUID) (*GenerateFileResponse, error)

	// OwnedReportExists is how the child-resource services enforce the
	// ownership boundary without reaching into this package's repo.
	OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error
}

type reportRepository interface {
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*models.Report, error)
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]models.Report, int64, error)
	Update(ctx context.Context, id, userID uuid.UUID, updates map[string]any) (*models.Report, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo reportRepository
}

// NewService constructs a reports service over the given repository.
func NewService(repo reportRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateReportInput) (*ReportDTO, error) {
	purpose, err := enums.ParseReportPurpose(input.Purpose)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
	}

	report, err := s.repo.Create(ctx, input.toModel(userID, purpose))
	if err != nil {
		return nil, s.asRepoError(err, "create report")
	}
	return FromModel(report), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResponse, error) {
	params = params.Normalize()

	reports, total, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reports")
	}

	items := make([]*ReportDTO, 0, len(reports))
	for i := range reports {
		items = append(items, FromModel(&reports[i]))
	}

	return &ListResponse{
		Items:   items,
		Total:   total,
		Page:    params.Page,
		PerPage: params.Limit,
		Pages:   pagination.PageCount(total, params.Limit),
	}, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*ReportDTO, error) {
	report, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, s.asRepoError(err, "load report")
	}
	return FromModel(report), nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, input UpdateReportInput) (*ReportDTO, error) {
	if input.Purpose != nil {
		if _, err := enums.ParseReportPurpose(*input.Purpose); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}
	if input.Status != nil {
		if _, err := enums.ParseReportStatus(*input.Status); err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error())
		}
	}

	report, err := s.repo.Update(ctx, id, userID, input.columns())
	if err != nil {
		return nil, s.asRepoError(err, "update report")
	}
	return FromModel(report), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return s.asRepoError(err, "delete report")
	}
	return nil
}

func (s *service) GeneratePDF(ctx context.Context, id, userID uuid.UUID) (*GenerateFileResponse, error) {
	return s.generateFile(ctx, id, userID, "pdf")
}

func (s *service) GenerateDocx(ctx context.Context, id, userID uuid.UUID) (*GenerateFileResponse, error) {
	return s.generateFile(ctx, id, userID, "docx")
}

// generateFile confirms ownership and answers with the export placeholder.
// Actual document rendering lands with the templating engine.
func (s *service) generateFile(ctx context.Context, id, userID uuid.UUID, format string) (*GenerateFileResponse, error) {
	report, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, s.asRepoError(err, "load report")
	}

	return &GenerateFileResponse{
		ReportID: report.ID,
		Format:   format,
		Filename: fmt.Sprintf("report_%s.%s", report.ID, format),
		Message:  fmt.Sprintf("%s generation not yet implemented", format),
	}, nil
}

func (s *service) OwnedReportExists(ctx context.Context, reportID, userID uuid.UUID) error {
	if _, err := s.repo.FindOwned(ctx, reportID, userID); err != nil {
		return s.asRepoError(err, "load report")
	}
	return nil
}

// asRepoError maps gorm not-found onto the ownership-hiding 404 and
// duplicate reference numbers onto 409; anything else is an internal
// failure.
func (s *service) asRepoError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.New(pkgerrors.CodeConflict, "Reference number already in use")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
