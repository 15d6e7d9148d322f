package postgres

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// documentRepository implements the repository.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// Create persists document metadata.
func (repo *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentM := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(documentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = documentM.ID

	return nil
}

// FindByID retrieves document metadata by its ID.
func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	var documentM model.DocumentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrDocumentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find document by ID")
	}

	return toDocumentDomain(&documentM), nil
}

// ListByUser returns a user's documents, newest first.
func (repo *documentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	var documentModels []*model.DocumentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&documentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list documents")
	}

	documents := make([]*entity.Document, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toDocumentDomain(documentM))
	}

	return documents, nil
}

// --- Mapper Functions ---

func toDocumentDomain(data *model.DocumentModel) *entity.Document {
	if data == nil {
		return nil
	}

	return &entity.Document{
		ID:         data.ID,
		UserID:     data.UserID,
		Filename:   data.Filename,
		MediaType:  data.MediaType,
		StorageKey: data.StorageKey,
		Size:       data.Size,
		Checksum:   data.Checksum,
		UploadedAt: data.UploadedAt.UTC(),
	}
}

func fromDocumentDomain(data *entity.Document) *model.DocumentModel {
	if data == nil {
		return nil
	}

	return &model.DocumentModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Filename:   data.Filename,
		MediaType:  data.MediaType,
		StorageKey: data.StorageKey,
		Size:       data.Size,
		Checksum:   data.Checksum,
		UploadedAt: data.UploadedAt,
	}
}
