package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/ayoqsh/loyalty-service/internal/domain"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/kafka"
	"github.com/ayoqsh/loyalty-service/internal/infrastructure/metrics"
	pipelinedto "github.com/ayoqsh/loyalty-service/internal/usecase/dto/pipeline"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
)

type PipelineUsecase interface {
	ProcessSubmission(ctx context.Context, input *pipelinedto.SubmissionInput) *pipelinedto.SubmissionOutput
}

// Options carries the station-level knobs the orchestrator needs.
type Options struct {
	Location     *time.Location
	Currency     string
	FetchRetries int
	FetchBackoff time.Duration
	EventTopic   string
}

type DefaultPipelineUsecase struct {
	Fetcher      domain.ReceiptFetcher
	LedgerRepo   domain.LedgerRepository
	CustomerRepo domain.CustomerRepository
	RuleRepo     domain.RuleRepository
	SettingsRepo domain.SettingsRepository
	Guard        domain.SubmissionGuard
	Publisher    *kafka.DefaultKafkaPublisher
	Notifier     domain.SubmissionNotifier
	Metrics      *metrics.PipelineMetrics
	Logger       *zap.Logger
	Opts         Options

	newRequestID func() string
}

func NewDefaultPipelineUsecase(
	fetcher domain.ReceiptFetcher,
	ledgerRepo domain.LedgerRepository,
	customerRepo domain.CustomerRepository,
	ruleRepo domain.RuleRepository,
	settingsRepo domain.SettingsRepository,
	guard domain.SubmissionGuard,
	pub *kafka.DefaultKafkaPublisher,
	botNotifier domain.SubmissionNotifier,
	pipelineMetrics *metrics.PipelineMetrics,
	logger *zap.Logger,
	opts Options) *DefaultPipelineUsecase {

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		log.Fatalf("failed to init request id generator: %v", err)
	}

	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.FetchRetries <= 0 {
		opts.FetchRetries = 3
	}
	if opts.FetchBackoff <= 0 {
		opts.FetchBackoff = 500 * time.Millisecond
	}

	return &DefaultPipelineUsecase{
		Fetcher:      fetcher,
		LedgerRepo:   ledgerRepo,
		CustomerRepo: customerRepo,
		RuleRepo:     ruleRepo,
		SettingsRepo: settingsRepo,
		Guard:        guard,
		Publisher:    pub,
		Notifier:     botNotifier,
		Metrics:      pipelineMetrics,
		Logger:       logger,
		Opts:         opts,
		newRequestID: idGenerator,
	}
}
