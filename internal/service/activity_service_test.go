package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
)

func TestActivityService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         *domain.CreateActivityRequest
		wantErr     error
		wantRecover bool
	}{
		{
			name: "with stress pair",
			req: &domain.CreateActivityRequest{
				ActivityType:    domain.ActivityBreathing,
				DurationSeconds: 300,
				StressBefore:    intPtr(7),
				StressAfter:     intPtr(4),
			},
			wantRecover: true,
		},
		{
			name: "without stress readings",
			req:  &domain.CreateActivityRequest{ActivityType: domain.ActivityGratitude, DurationSeconds: 120},
		},
		{
			name: "only stress before",
			req: &domain.CreateActivityRequest{
				ActivityType: domain.ActivityMeditation,
				StressBefore: intPtr(6),
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "completed in the future",
			req: &domain.CreateActivityRequest{
				ActivityType: domain.ActivityExercise,
				CompletedAt:  timePtr(fixedNow.Add(time.Minute)),
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := NewMockUserRepository()
			userID := users.addUser("UTC")
			svc := NewActivityService(NewMockActivityRepository(), users).(*activityService)
			svc.now = func() time.Time { return fixedNow }

			activity, err := svc.Create(context.Background(), userID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if !activity.CompletedAt.Equal(fixedNow) {
				t.Errorf("CompletedAt = %v, want %v", activity.CompletedAt, fixedNow)
			}
			resp := activity.ToResponse()
			if (resp.RecoverySpeed != nil) != tt.wantRecover {
				t.Errorf("RecoverySpeed = %v, want present=%v", resp.RecoverySpeed, tt.wantRecover)
			}
		})
	}
}

func TestActivityService_List(t *testing.T) {
	users := NewMockUserRepository()
	userID := users.addUser("UTC")
	svc := NewActivityService(NewMockActivityRepository(), users).(*activityService)
	svc.now = func() time.Time { return fixedNow }

	for i := 0; i < 3; i++ {
		at := fixedNow.Add(-time.Duration(i) * 24 * time.Hour)
		req := &domain.CreateActivityRequest{ActivityType: domain.ActivityMeditation, DurationSeconds: 600, CompletedAt: &at}
		if _, err := svc.Create(context.Background(), userID, req); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	from := fixedNow.Add(-36 * time.Hour)
	resp, err := svc.List(context.Background(), userID, domain.ListFilter{From: &from})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 activities since %v, got %d", from, len(resp.Data))
	}
	if resp.Pagination.HasMore {
		t.Error("expected a single page")
	}
}
