package worker

import (
	"context"

	"github.com/osse101/IdleForge_Go/internal/logger"
)

// BonusGenerator is the part of bonus.Service the job needs
type BonusGenerator interface {
	GenerateNewBonus(ctx context.Context) (bool, error)
}

// BonusGenerationJob tops up the bonus pool by at most one bonus per run
type BonusGenerationJob struct {
	generator BonusGenerator
}

// NewBonusGenerationJob creates the periodic bonus job
func NewBonusGenerationJob(generator BonusGenerator) *BonusGenerationJob {
	return &BonusGenerationJob{generator: generator}
}

func (j *BonusGenerationJob) Name() string { return JobNameBonusGeneration }

func (j *BonusGenerationJob) Process(ctx context.Context) error {
	created, err := j.generator.GenerateNewBonus(ctx)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	if created {
		log.Info(LogMsgBonusGenerated)
	} else {
		log.Debug(LogMsgPoolFull)
	}
	return nil
}
