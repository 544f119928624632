package jobs

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/observability"
)

// RewardReleaser clears matured pending rewards in batches
type RewardReleaser interface {
	ReleaseMaturedRewards(ctx context.Context, referenceDate time.Time) (int, error)
}

// RewardMaturationJob periodically sweeps pending rewards whose maturation
// window has elapsed and promotes them to cleared.
type RewardMaturationJob struct {
	releaser RewardReleaser
	logger   *observability.Logger
	interval time.Duration
}

// NewRewardMaturationJob creates a new reward maturation job
func NewRewardMaturationJob(releaser RewardReleaser, logger *observability.Logger, interval time.Duration) *RewardMaturationJob {
	if interval == 0 {
		interval = 1 * time.Hour
	}

	return &RewardMaturationJob{
		releaser: releaser,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *RewardMaturationJob) Name() string {
	return "reward_maturation"
}

// Schedule returns how often the job should run
func (j *RewardMaturationJob) Schedule() time.Duration {
	return j.interval
}

// Run executes a maturation sweep. It drains batch after batch until no
// matured rewards remain, so a long backlog does not wait for the next tick.
func (j *RewardMaturationJob) Run(ctx context.Context) error {
	total := 0
	for {
		cleared, err := j.releaser.ReleaseMaturedRewards(ctx, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to release matured rewards: %w", err)
		}
		total += cleared
		if cleared == 0 {
			break
		}
	}

	j.logger.Info(ctx, fmt.Sprintf("Reward maturation sweep cleared %d rewards", total))
	return nil
}
