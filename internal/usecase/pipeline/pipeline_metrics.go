package pipeline

import "time"

func (uc *DefaultPipelineUsecase) recordSettled(amount, cashback float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSettled(uc.Opts.Currency, amount, cashback)
}

func (uc *DefaultPipelineUsecase) recordFailed(reason string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordFailed(reason)
}

func (uc *DefaultPipelineUsecase) recordFetch(outcome string, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordFetch(outcome, elapsed.Seconds())
}

func (uc *DefaultPipelineUsecase) recordSettle(outcome string, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordSettle(outcome, elapsed.Seconds())
}

func (uc *DefaultPipelineUsecase) recordClampedEvaluation() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.ClampedEvaluationsTotal.Inc()
}

func (uc *DefaultPipelineUsecase) recordGuardRejection() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.GuardRejectionsTotal.Inc()
}
