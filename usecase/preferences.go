package usecase

import (
	"context"

	"main/model"
	"main/utils"
)

type PreferencesService struct {
	Preferences PreferencesStore
}

func (svc *PreferencesService) GetPreferences(ctx context.Context, userID string) (*model.Preferences, error) {
	return svc.Preferences.GetPreferences(ctx, userID)
}

func (svc *PreferencesService) UpdatePreferences(ctx context.Context, userID string, prefs *model.Preferences) (*model.Preferences, error) {
	prefs.UserID = userID
	if prefs.Timezone != "" && !utils.ValidateTimezone(prefs.Timezone) {
		return nil, model.NewValidationError("invalid timezone %q", prefs.Timezone)
	}
	if prefs.CoachingTopN < 0 || prefs.CoachingTopN > 10 {
		return nil, model.NewValidationError("coaching top N must be between 0 and 10")
	}
	if prefs.CoachingTopN == 0 {
		prefs.CoachingTopN = DefaultCoachingTopN
	}

	if err := svc.Preferences.UpsertPreferences(ctx, prefs); err != nil {
		return nil, err
	}
	return svc.Preferences.GetPreferences(ctx, userID)
}
