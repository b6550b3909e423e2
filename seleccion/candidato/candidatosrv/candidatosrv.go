package candidatosrv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/fsx"
	"github.com/vinculohr/vinculo/pkg/iam/auth"
	"github.com/vinculohr/vinculo/pkg/kernel"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/candidato"
)

// CandidatoService manages candidatos and their document submissions
type CandidatoService struct {
	repo        candidato.Repository
	solicitudes candidato.SolicitudReceiver
	passwordSvc auth.PasswordService
	files       fsx.FileSystem
}

// NewCandidatoService creates a new candidato service
func NewCandidatoService(
	repo candidato.Repository,
	solicitudes candidato.SolicitudReceiver,
	passwordSvc auth.PasswordService,
	files fsx.FileSystem,
) *CandidatoService {
	return &CandidatoService{
		repo:        repo,
		solicitudes: solicitudes,
		passwordSvc: passwordSvc,
		files:       files,
	}
}

// Create registers a new candidato
func (s *CandidatoService) Create(ctx context.Context, req candidato.CreateCandidatoRequest) (*candidato.Candidato, error) {
	doc := kernel.Documento{Type: req.DocumentoTipo, Number: req.DocumentoNumero}
	if !doc.IsValid() {
		return nil, candidato.ErrInvalidDocumento().
			WithDetail("tipo", string(doc.Type)).
			WithDetail("numero", doc.Number)
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, candidato.ErrInvalidRequest().
			WithDetail("message", "first_name y last_name son obligatorios")
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := s.passwordSvc.Hash(req.Password)
		if err != nil {
			return nil, errx.Wrap(err, "failed to hash password", errx.TypeInternal)
		}
		passwordHash = hash
	}

	now := time.Now()
	entity := &candidato.Candidato{
		ID:           kernel.NewCandidatoID(uuid.NewString()),
		Documento:    doc,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		CiudadID:     req.CiudadID,
		PasswordHash: passwordHash,
		Status:       candidato.CandidatoStatusActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Get retrieves a candidato
func (s *CandidatoService) Get(ctx context.Context, id kernel.CandidatoID) (*candidato.Candidato, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves candidatos with pagination
func (s *CandidatoService) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidato.Candidato], error) {
	return s.repo.List(ctx, pagination)
}

// Update modifies a candidato's contact and location data
func (s *CandidatoService) Update(ctx context.Context, id kernel.CandidatoID, req candidato.UpdateCandidatoRequest) (*candidato.Candidato, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		entity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		entity.LastName = *req.LastName
	}
	if req.Email != nil {
		entity.Email = *req.Email
	}
	if req.Phone != nil {
		entity.Phone = *req.Phone
	}
	if req.CiudadID != nil {
		entity.CiudadID = *req.CiudadID
	}
	entity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, id, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Archive archives a candidato
func (s *CandidatoService) Archive(ctx context.Context, id kernel.CandidatoID) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := entity.Archive(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, entity)
}

// Unarchive restores an archived candidato
func (s *CandidatoService) Unarchive(ctx context.Context, id kernel.CandidatoID) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := entity.Unarchive(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, entity)
}

// SubmitDocuments stores the uploaded files and moves the solicitud to
// pendiente documentos. Files are persisted before the transition so a
// rejected transition never loses an upload.
func (s *CandidatoService) SubmitDocuments(
	ctx context.Context,
	candidatoID kernel.CandidatoID,
	solicitudID kernel.SolicitudID,
	files []candidato.DocumentFile,
) ([]candidato.DocumentoEntrega, error) {
	if len(files) == 0 {
		return nil, candidato.ErrNoDocuments()
	}

	entity, err := s.repo.GetByID(ctx, candidatoID)
	if err != nil {
		return nil, err
	}
	if !entity.IsActive() {
		return nil, candidato.ErrCandidatoInactive()
	}

	entregas := make([]candidato.DocumentoEntrega, 0, len(files))
	for _, file := range files {
		key := s.files.Join("entregas", string(solicitudID), fmt.Sprintf("%s_%s", uuid.NewString(), file.Nombre))
		if err := s.files.WriteFile(ctx, key, file.Data); err != nil {
			return nil, errx.Wrap(err, "failed to store document", errx.TypeExternal)
		}

		entrega := candidato.DocumentoEntrega{
			ID:          uuid.NewString(),
			CandidatoID: candidatoID,
			SolicitudID: solicitudID,
			Nombre:      file.Nombre,
			BucketURL:   kernel.BucketURL(key),
			ContentType: file.ContentType,
			Size:        int64(len(file.Data)),
			CreatedAt:   time.Now(),
		}
		if err := s.repo.SaveEntrega(ctx, &entrega); err != nil {
			return nil, err
		}
		entregas = append(entregas, entrega)
	}

	if err := s.solicitudes.RegistrarEntregaDocumentos(ctx, solicitudID, candidatoID); err != nil {
		return nil, err
	}

	logx.Infof("candidato %s entregó %d documentos para solicitud %s", candidatoID, len(entregas), solicitudID)
	return entregas, nil
}

// Entregas lists the documents submitted for a solicitud
func (s *CandidatoService) Entregas(ctx context.Context, solicitudID kernel.SolicitudID) ([]candidato.DocumentoEntrega, error) {
	return s.repo.ListEntregas(ctx, solicitudID)
}
