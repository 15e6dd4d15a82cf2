package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/printline/printdesk/internal/config"
	domainErrors "github.com/printline/printdesk/internal/domain/errors"
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/domain/repository"
	"github.com/printline/printdesk/internal/telemetry"
)

// OrderSource supplies the loaded order set challans are resolved against.
type OrderSource interface {
	List() []model.Order
}

// ChallanDraft is the working selection accumulated before generation.
type ChallanDraft struct {
	Type     model.ChallanType
	OrderIDs []string
	Photos   map[string]int
}

// ChallanService assembles printable challan documents from a selection of
// loaded orders. It keeps a single working draft, consumed and cleared by a
// successful Generate; it never mutates orders.
type ChallanService struct {
	source       OrderSource
	repo         repository.ChallanRepository
	metrics      *telemetry.Metrics
	logger       *slog.Logger
	businessName string
	now          func() time.Time

	mu    sync.Mutex
	draft ChallanDraft
}

// NewChallanService constructs ChallanService.
func NewChallanService(source OrderSource, repo repository.ChallanRepository, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) *ChallanService {
	return &ChallanService{
		source:       source,
		repo:         repo,
		metrics:      metrics,
		logger:       logger,
		businessName: cfg.BusinessName,
		now:          time.Now,
	}
}

// Draft returns a copy of the current working selection.
func (s *ChallanService) Draft() ChallanDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDraft(s.draft)
}

// UpdateDraft replaces the working selection.
func (s *ChallanService) UpdateDraft(draft ChallanDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = cloneDraft(draft)
}

// ClearDraft discards the working selection.
func (s *ChallanService) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = ChallanDraft{}
}

// Generate validates the selection, resolves each order id against the
// loaded set, and returns the assembled document. Unresolvable ids are
// skipped rather than failing the batch. Photo counts apply to the photos
// variant and default to zero. On success the working draft is cleared and
// the challan is recorded in the log; the log write is best effort since
// the printed document is already on its way to the caller.
func (s *ChallanService) Generate(ctx context.Context, typ model.ChallanType, orderIDs []string, photos map[string]int) (*model.ChallanDocument, error) {
	if typ == "" {
		return nil, domainErrors.ErrMissingChallanType
	}
	if len(orderIDs) == 0 {
		return nil, domainErrors.ErrEmptySelection
	}

	byID := make(map[string]model.Order)
	for _, order := range s.source.List() {
		byID[order.ID] = order
	}

	var (
		rows     []model.ChallanRow
		resolved []string
	)
	for _, id := range orderIDs {
		order, ok := byID[id]
		if !ok {
			s.logger.Warn("challan order id not loaded, skipping", slog.String("id", id))
			continue
		}
		rows = append(rows, model.ChallanRow{
			OrderID:         order.ID,
			Client:          order.Client,
			Manufacturer:    order.Manufacturer,
			Product:         order.Product,
			Quantity:        order.Quantity,
			PhotosDelivered: photos[id],
		})
		resolved = append(resolved, id)
	}

	doc := &model.ChallanDocument{
		Challan: model.Challan{
			ID:          uuid.NewString(),
			Type:        typ,
			OrderIDs:    resolved,
			GeneratedAt: s.now(),
		},
		BusinessName: s.businessName,
		Rows:         rows,
	}

	if err := s.repo.Log(ctx, doc.Challan); err != nil {
		s.logger.Error("challan log write failed",
			slog.String("challan", doc.ID),
			slog.String("error", err.Error()))
	}

	s.metrics.ChallansGenerated.WithLabelValues(string(typ)).Inc()
	s.ClearDraft()

	return doc, nil
}

// History lists previously generated challans, newest first.
func (s *ChallanService) History(ctx context.Context) ([]model.Challan, error) {
	return s.repo.List(ctx)
}

func cloneDraft(draft ChallanDraft) ChallanDraft {
	clone := ChallanDraft{Type: draft.Type}
	if draft.OrderIDs != nil {
		clone.OrderIDs = append([]string(nil), draft.OrderIDs...)
	}
	if draft.Photos != nil {
		clone.Photos = make(map[string]int, len(draft.Photos))
		for k, v := range draft.Photos {
			clone.Photos[k] = v
		}
	}
	return clone
}
