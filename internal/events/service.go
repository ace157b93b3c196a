package events

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ticketeiro/internal/auth"
	"ticketeiro/internal/logger"
	"ticketeiro/internal/models"
	"ticketeiro/internal/schema"
	"ticketeiro/internal/storage"
	"ticketeiro/internal/utils"
)

type DBLayer interface {
	InsertEvent(ctx context.Context, event models.Event) (*models.Event, error)
	InsertTicket(ctx context.Context, ticket models.Ticket) (*models.Ticket, error)
	InsertDay(ctx context.Context, day models.EventDay) (*models.EventDay, error)
	InsertBatch(ctx context.Context, batch models.Batch) (*models.Batch, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListTicketSectors(ctx context.Context) ([]models.TicketSector, error)
}

type ObjectStore interface {
	SignedUploadURL(req storage.UploadRequest) (string, error)
	Upload(ctx context.Context, signedURL, contentType string, body []byte) error
}

type ListingCache interface {
	GetOrganizerEvents(ctx context.Context, organizerID string) ([]models.Event, bool, error)
	SetOrganizerEvents(ctx context.Context, organizerID string, events []models.Event) error
	InvalidateOrganizerEvents(ctx context.Context, organizerID string) error
}

type EventPublisher interface {
	PublishEventCreated(topic string, event models.Event) error
}

// ResultKind discriminates the submission pipeline outcomes.
type ResultKind string

const (
	ResultOK                   ResultKind = "OK"
	ResultNotAuthenticated     ResultKind = "NotAuthenticated"
	ResultValidationFailed     ResultKind = "ValidationFailed"
	ResultMissingRequiredField ResultKind = "MissingRequiredField"
	ResultUploadFailed         ResultKind = "UploadFailed"
	ResultEventCreateFailed    ResultKind = "EventCreateFailed"
	ResultTicketCreateFailed   ResultKind = "TicketCreateFailed"
	ResultUnexpectedError      ResultKind = "UnexpectedError"
)

// Result is the tagged outcome every pipeline stage funnels into. The
// UI only surfaces Message; Fields carries validation detail.
type Result struct {
	Kind    ResultKind          `json:"kind"`
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Fields  []schema.FieldError `json:"fields,omitempty"`
	EventID string              `json:"eventId,omitempty"`
}

func failure(kind ResultKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

type EventService struct {
	DB     DBLayer
	Store  ObjectStore
	Cache  ListingCache
	Kafka  EventPublisher
	Topic  string
	Logger *logger.Logger
}

func NewEventService(db DBLayer, store ObjectStore, cache ListingCache, kafka EventPublisher, topic string, log *logger.Logger) *EventService {
	return &EventService{DB: db, Store: store, Cache: cache, Kafka: kafka, Topic: topic, Logger: log}
}

// CreateEvent runs the whole submission pipeline for a validated draft:
// auth check, server-side re-validation, attachment uploads via signed
// URLs, then the event and ticket inserts. Each stage returns a tagged
// result; there is no compensation, so a ticket-insert failure leaves
// the already-inserted event row in place.
func (s *EventService) CreateEvent(ctx context.Context, session *auth.Session, draft *models.EventDraft) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			if s.Logger != nil {
				s.Logger.Error("EVENT", fmt.Sprintf("panic in create-event pipeline: %v", r))
			}
			result = failure(ResultUnexpectedError, "Erro inesperado ao criar o evento")
		}
	}()

	if session == nil || session.UserID == "" {
		return failure(ResultNotAuthenticated, "Não autenticado")
	}

	// Client validation is advisory only; the tree is re-validated here.
	if err := schema.ValidateEventDraft(draft); err != nil {
		res := failure(ResultValidationFailed, "Campos inválidos")
		if verr, ok := err.(*schema.ValidationError); ok {
			res.Fields = verr.Fields
		}
		return res
	}

	if draft.Name == "" || draft.CategoryID == "" || draft.StartDate.IsZero() ||
		draft.EndDate.IsZero() || draft.Image == nil || draft.Description == "" ||
		draft.Ticket == nil || draft.Mode == "" {
		return failure(ResultMissingRequiredField, "Campos obrigatórios não preenchidos")
	}

	imageFile := draft.Image
	ticketFile := draft.Ticket.File
	if len(imageFile.Content) == 0 || ticketFile == nil || len(ticketFile.Content) == 0 {
		return failure(ResultMissingRequiredField, "Arquivo de imagem ou ingresso não encontrado")
	}

	// Banner image upload. The object key is random and unguessable;
	// the content hash binds the upload to this exact binary.
	signedImageURL, err := s.uploadFile(ctx, session.UserID, imageFile)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Error("UPLOAD", fmt.Sprintf("image upload failed: %v", err))
		}
		if err == errSignURL {
			return failure(ResultUploadFailed, "Falha ao criar a URL de upload")
		}
		return failure(ResultUploadFailed, "Falha ao realizar o upload da imagem")
	}

	// The ticket's supporting document goes through the same steps
	// independently: its own key, its own hash.
	signedTicketURL, err := s.uploadFile(ctx, session.UserID, ticketFile)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Error("UPLOAD", fmt.Sprintf("ticket file upload failed: %v", err))
		}
		if err == errSignURL {
			return failure(ResultUploadFailed, "Falha ao criar a URL de upload do ingresso")
		}
		return failure(ResultUploadFailed, "Falha ao realizar o upload do ingresso")
	}

	event := models.Event{
		ID:         uuid.NewString(),
		CategoryID: draft.CategoryID,
		Name:       draft.Name,
		// The stored reference is the stable object locator, never the
		// signed capability URL.
		Image:        storage.StripSignature(signedImageURL),
		Description:  draft.Description,
		Status:       models.EventStatusActive,
		Mode:         draft.Mode,
		City:         draft.City,
		Neighborhood: draft.Neighborhood,
		Address:      draft.Address,
		UF:           draft.UF,
		Map:          draft.Map,
		StartDate:    draft.StartDate.Time,
		EndDate:      draft.EndDate.Time,
		OrganizerID:  session.UserID,
		CreatedAt:    time.Now(),
	}

	inserted, err := s.DB.InsertEvent(ctx, event)
	if err != nil || inserted == nil {
		if s.Logger != nil {
			s.Logger.Error("DATABASE", fmt.Sprintf("event insert failed: %v", err))
		}
		return failure(ResultEventCreateFailed, "Falha ao criar o evento")
	}

	s.persistDays(ctx, inserted.ID, draft.Days)

	ticket := models.Ticket{
		ID:        uuid.NewString(),
		EventID:   inserted.ID,
		SectorID:  draft.Ticket.SectorID,
		Price:     draft.Ticket.Price,
		Quantity:  draft.Ticket.Quantity,
		Gender:    draft.Ticket.Gender,
		Obs:       draft.Ticket.Obs,
		File:      storage.StripSignature(signedTicketURL),
		IsNominal: draft.Ticket.IsNominal,
		Status:    models.TicketStatusAvailable,
		CreatedAt: time.Now(),
	}

	insertedTicket, err := s.DB.InsertTicket(ctx, ticket)
	if err != nil || insertedTicket == nil {
		if s.Logger != nil {
			// The event row stays behind; at-least-once, no cleanup.
			s.Logger.Error("DATABASE", fmt.Sprintf("ticket insert failed for event %s: %v", inserted.ID, err))
		}
		return failure(ResultTicketCreateFailed, "Falha ao criar o ingresso")
	}

	if s.Cache != nil {
		if err := s.Cache.InvalidateOrganizerEvents(ctx, session.UserID); err != nil && s.Logger != nil {
			s.Logger.Warn("CACHE", fmt.Sprintf("failed to invalidate organizer listing: %v", err))
		}
	}

	if s.Kafka != nil {
		if err := s.Kafka.PublishEventCreated(s.Topic, *inserted); err != nil && s.Logger != nil {
			s.Logger.Warn("KAFKA", fmt.Sprintf("failed to publish event created: %v", err))
		}
	}

	return Result{Kind: ResultOK, Success: true, Message: "Evento criado com sucesso", EventID: inserted.ID}
}

var errSignURL = errors.New("signed URL creation failed")

// uploadFile hashes the binary, requests a signed destination and PUTs
// the content. Returns the signed URL used, for reference stripping.
func (s *EventService) uploadFile(ctx context.Context, userID string, file *models.FileUpload) (string, error) {
	digest := sha256.Sum256(file.Content)

	signedURL, err := s.Store.SignedUploadURL(storage.UploadRequest{
		Key:           utils.GenerateObjectKey(),
		ContentType:   file.ContentType,
		ContentLength: int64(len(file.Content)),
		ContentSHA256: hex.EncodeToString(digest[:]),
		Metadata:      map[string]string{"userId": userID},
	})
	if err != nil || signedURL == "" {
		return "", errSignURL
	}

	if err := s.Store.Upload(ctx, signedURL, file.ContentType, file.Content); err != nil {
		return "", err
	}
	return signedURL, nil
}

// persistDays writes the day and batch rows of a producer draft. These
// are supporting rows for the editor; failures are logged and do not
// abort the submission.
func (s *EventService) persistDays(ctx context.Context, eventID string, days []models.DayDraft) {
	for _, dayDraft := range days {
		day := models.EventDay{
			ID:        uuid.NewString(),
			EventID:   eventID,
			Date:      dayDraft.Date.Time,
			StartTime: dayDraft.StartTime.Time,
			EndTime:   dayDraft.EndTime.Time,
			CreatedAt: time.Now(),
		}
		if _, err := s.DB.InsertDay(ctx, day); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("DATABASE", fmt.Sprintf("failed to insert event day: %v", err))
			}
			continue
		}
		for _, batchDraft := range dayDraft.Batches {
			batch := models.Batch{
				ID:        uuid.NewString(),
				EventID:   eventID,
				DayID:     day.ID,
				Name:      batchDraft.Name,
				StartDate: batchDraft.StartDate.Time,
				EndDate:   batchDraft.EndDate.Time,
				CreatedAt: time.Now(),
			}
			if _, err := s.DB.InsertBatch(ctx, batch); err != nil && s.Logger != nil {
				s.Logger.Warn("DATABASE", fmt.Sprintf("failed to insert batch: %v", err))
			}
		}
	}
}

// ---------------- LISTINGS ----------------

func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.DB.GetEventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("event %s not found: %w", id, err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.DB.ListEvents(ctx)
}

// ListEventsByOrganizer reads through the Redis cache.
func (s *EventService) ListEventsByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	if s.Cache != nil {
		if cached, ok, err := s.Cache.GetOrganizerEvents(ctx, organizerID); err == nil && ok {
			return cached, nil
		}
	}

	events, err := s.DB.ListEventsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for organizer %s: %w", organizerID, err)
	}

	if s.Cache != nil {
		if err := s.Cache.SetOrganizerEvents(ctx, organizerID, events); err != nil && s.Logger != nil {
			s.Logger.Warn("CACHE", fmt.Sprintf("failed to cache organizer listing: %v", err))
		}
	}
	return events, nil
}

func (s *EventService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.DB.ListCategories(ctx)
}

func (s *EventService) ListTicketSectors(ctx context.Context) ([]models.TicketSector, error) {
	return s.DB.ListTicketSectors(ctx)
}
