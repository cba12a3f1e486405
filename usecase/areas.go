package usecase

import (
	"context"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
)

// AreaService owns area writes. An area may link to at most one pillar;
// deleting an area unlinks child projects instead of cascading.
type AreaService struct {
	Areas    AreaStore
	Pillars  PillarStore
	Projects ProjectStore
}

func (svc *AreaService) CreateArea(ctx context.Context, area *model.Area) error {
	if area.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if area.Name == "" {
		return model.NewValidationError("area name is required")
	}
	if err := validateImportance(area.Importance); err != nil {
		return err
	}

	if area.PillarID != nil {
		pillar, err := svc.Pillars.GetPillarByID(ctx, area.UserID, *area.PillarID)
		if err != nil {
			return err
		}
		if pillar == nil {
			return model.NewNotFoundError("pillar", *area.PillarID)
		}
	}

	if area.AreaID == "" {
		area.AreaID = uuid.New().String()
	}
	if area.Importance == 0 {
		area.Importance = 3
	}
	now := time.Now()
	area.CreatedAt = now
	area.UpdatedAt = now

	return svc.Areas.CreateArea(ctx, area)
}

func (svc *AreaService) UpdateArea(ctx context.Context, areaID, userID string, updates *model.Area) (*model.Area, error) {
	existing, err := svc.Areas.GetAreaByID(ctx, userID, areaID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewNotFoundError("area", areaID)
	}

	if updates.Name == "" {
		updates.Name = existing.Name
	}
	if updates.Importance == 0 {
		updates.Importance = existing.Importance
	}
	if err := validateImportance(updates.Importance); err != nil {
		return nil, err
	}

	if updates.PillarID != nil {
		pillar, err := svc.Pillars.GetPillarByID(ctx, userID, *updates.PillarID)
		if err != nil {
			return nil, err
		}
		if pillar == nil {
			return nil, model.NewNotFoundError("pillar", *updates.PillarID)
		}
	}

	if err := svc.Areas.UpdateArea(ctx, areaID, userID, updates); err != nil {
		return nil, err
	}
	return svc.Areas.GetAreaByID(ctx, userID, areaID)
}

// DeleteArea removes the area and nulls out area_id on its projects. The
// projects themselves survive.
func (svc *AreaService) DeleteArea(ctx context.Context, areaID, userID string) error {
	if err := svc.Areas.DeleteArea(ctx, areaID, userID); err != nil {
		return err
	}
	if err := svc.Projects.UnlinkArea(ctx, userID, areaID); err != nil {
		log.Printf("warning: failed to unlink projects from deleted area %s: %v", areaID, err)
		utils.TrackError("cascade", "area_unlink_failed")
	}
	return nil
}

func validateImportance(importance int) error {
	if importance < 0 || importance > 5 {
		return model.NewValidationError("importance must be between 1 and 5")
	}
	return nil
}
