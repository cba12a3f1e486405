package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// PillarService owns pillar writes. Deleting a pillar unlinks child areas
// instead of cascading; archiving is the normal soft-delete path.
type PillarService struct {
	Pillars PillarStore
	Areas   AreaStore
}

func (svc *PillarService) CreatePillar(ctx context.Context, pillar *model.Pillar) error {
	if pillar.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if pillar.Name == "" {
		return model.NewValidationError("pillar name is required")
	}
	if pillar.TimeAllocationPercentage != nil {
		if *pillar.TimeAllocationPercentage < 0 || *pillar.TimeAllocationPercentage > 100 {
			return model.NewValidationError("time allocation percentage must be between 0 and 100")
		}
	}

	if pillar.PillarID == "" {
		pillar.PillarID = uuid.New().String()
	}
	now := time.Now()
	pillar.CreatedAt = now
	pillar.UpdatedAt = now

	return svc.Pillars.CreatePillar(ctx, pillar)
}

func (svc *PillarService) UpdatePillar(ctx context.Context, pillarID, userID string, updates *model.Pillar) (*model.Pillar, error) {
	existing, err := svc.Pillars.GetPillarByID(ctx, userID, pillarID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("pillar", pillarID)
	}
	if updates.Name == "" {
		updates.Name = existing.Name
	}
	if updates.TimeAllocationPercentage != nil {
		if *updates.TimeAllocationPercentage < 0 || *updates.TimeAllocationPercentage > 100 {
			return nil, model.NewValidationError("time allocation percentage must be between 0 and 100")
		}
	}

	if err := svc.Pillars.UpdatePillar(ctx, pillarID, userID, updates); err != nil {
		return nil, err
	}
	return svc.Pillars.GetPillarByID(ctx, userID, pillarID)
}

// DeletePillar removes the pillar and nulls out pillar_id on its areas. The
// two writes are independent; a failed unlink is logged, not rolled back.
func (svc *PillarService) DeletePillar(ctx context.Context, pillarID, userID string) error {
	if err := svc.Pillars.DeletePillar(ctx, pillarID, userID); err != nil {
		return err
	}
	if err := svc.Areas.UnlinkPillar(ctx, userID, pillarID); err != nil {
		log.Printf("warning: failed to unlink areas from deleted pillar %s: %v", pillarID, err)
		utils.TrackError("cascade", "pillar_unlink_failed")
	}
	return nil
}
