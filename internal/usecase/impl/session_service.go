package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcourt/internal/delivery/context"
	"foodcourt/internal/domain/service"
	"foodcourt/internal/infra/metrics"
	"foodcourt/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenService service.TokenService
	metrics      metrics.MetricsCollector
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokenService service.TokenService,
	metricsCollector metrics.MetricsCollector,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokenService: tokenService,
		metrics:      metricsCollector,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueToken signs a session token for the given identity.
func (srv *sessionService) IssueToken(ctx context.Context, input usecase.IssueTokenInput) (*usecase.IssueTokenOutput, error) {
	token, err := srv.tokenService.GenerateToken(input.Email, input.Name)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.metrics.RecordTokenIssued()
	srv.log(ctx).Info("Session token issued", slog.String("email", input.Email))

	return &usecase.IssueTokenOutput{
		Token:     token,
		ExpiresIn: srv.tokenService.GetTokenDuration(),
	}, nil
}
