package worker

import (
	"context"

	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/services"
)

// SinkPushJob pushes one raw game result into the stats sink. Pushes are
// fire-and-forget: they run after the local progress write has already
// succeeded, and a failure here is logged by the pool and the record
// dropped. The local document and the sink are independent copies of the
// same fact with no ordering guarantee between them.
type SinkPushJob struct {
	Stats  services.StatsService
	Record models.GameResult
}

func (j *SinkPushJob) Name() string { return "sink-push" }

func (j *SinkPushJob) Run(ctx context.Context) error {
	_, err := j.Stats.SaveGameStats(ctx, j.Record)
	return err
}
