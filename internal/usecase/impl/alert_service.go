package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "alertstream/internal/delivery/context"
	"alertstream/internal/domain/entity"
	domainerrors "alertstream/internal/domain/errors"
	"alertstream/internal/domain/repository"
	"alertstream/internal/errors"
	"alertstream/internal/realtime"
	"alertstream/internal/usecase"
	"alertstream/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	alertRepo  repository.AlertRepository
	dispatcher realtime.Dispatcher
	logger     *slog.Logger
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo  repository.AlertRepository
	Dispatcher realtime.Dispatcher
	Logger     *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo:  params.AlertRepo,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAlert persists the alert first; pushing it to live connections can never undo
// or fail the creation.
func (srv *alertService) CreateAlert(ctx context.Context, input usecase.CreateAlertInput) (*entity.Alert, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("message is required")
	}

	kind := input.Kind
	if kind == "" {
		kind = entity.AlertKindManual
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("type must be manual or automatic")
	}

	recipients := entity.BroadcastRecipients()
	if userID := strings.TrimSpace(input.UserID); userID != "" {
		recipients = entity.UserRecipients(userID)
	}

	alert := &entity.Alert{
		Message:    message,
		Kind:       kind,
		Recipients: recipients,
	}
	if err := srv.alertRepo.Create(ctx, alert); err != nil {
		srv.log(ctx).Error("Failed to persist alert", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create alert")
	}

	// The caller hanging up must not cut delivery to other users short.
	srv.dispatcher.Dispatch(context.WithoutCancel(ctx), realtime.TargetFor(alert), alert)

	srv.log(ctx).Info("Alert created",
		slog.String("alert_id", alert.ID.String()),
		slog.Bool("broadcast", alert.Recipients.Broadcast),
	)

	return alert, nil
}

// ListAlerts returns a page of alerts visible to a user, newest first.
func (srv *alertService) ListAlerts(ctx context.Context, input usecase.ListAlertsInput) (*usecase.AlertPage, error) {
	query := buildAlertQuery(input)

	alerts, total, err := srv.alertRepo.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query alerts")
	}

	return newAlertPage(query, alerts, total), nil
}

// GetUserAlerts fetches the page and the statistics concurrently.
func (srv *alertService) GetUserAlerts(ctx context.Context, input usecase.ListAlertsInput) (*usecase.UserAlertsOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("userId is required")
	}
	query := buildAlertQuery(input)

	var (
		alerts []*entity.Alert
		total  int64
		stats  *entity.AlertStats
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		alerts, total, err = srv.alertRepo.Query(groupCtx, query)

		return errors.Wrap(err, "failed to query alerts")
	})
	group.Go(func() error {
		var err error
		stats, err = srv.alertRepo.Stats(groupCtx, query.UserID)

		return errors.Wrap(err, "failed to load alert stats")
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &usecase.UserAlertsOutput{
		Page:  newAlertPage(query, alerts, total),
		Stats: stats,
	}, nil
}

// MarkAlertRead sets the shared read flag of an alert.
func (srv *alertService) MarkAlertRead(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	alert, err := srv.alertRepo.MarkRead(ctx, id)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return nil, domainerrors.ErrAlertNotFound.WrapMessage("alert not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark alert as read")
	}

	return alert, nil
}

// MarkAllRead marks every alert visible to a user as read.
func (srv *alertService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("userId is required")
	}

	updated, err := srv.alertRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all alerts as read")
	}

	srv.log(ctx).Debug("Alerts marked as read", slog.String("user_id", userID), slog.Int64("updated", updated))

	return updated, nil
}

func buildAlertQuery(input usecase.ListAlertsInput) entity.AlertQuery {
	page, size := util.NormalizePage(input.Page, input.Limit, defaultPageSize, maxPageSize)
	filter := input.Filter
	if filter == "" {
		filter = entity.ReadFilterAll
	}

	return entity.AlertQuery{
		UserID:   strings.TrimSpace(input.UserID),
		Filter:   filter,
		Page:     page,
		PageSize: size,
	}
}

func newAlertPage(query entity.AlertQuery, alerts []*entity.Alert, total int64) *usecase.AlertPage {
	if alerts == nil {
		alerts = []*entity.Alert{}
	}

	return &usecase.AlertPage{
		Alerts:      alerts,
		CurrentPage: query.Page,
		TotalPages:  util.TotalPages(total, query.PageSize),
		Total:       total,
	}
}
