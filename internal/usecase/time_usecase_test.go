package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

func TestTimeOffsetPersistsAndRestores(t *testing.T) {
	offsets := &fakeOffsetRepo{}
	ctx := context.Background()

	first := NewTimeUsecase(clock.NewSimulated(), offsets)
	status, err := first.SetOffset(ctx, 72*time.Hour)
	if err != nil {
		t.Fatalf("set offset: %v", err)
	}
	if !status.Simulated || status.Offset != 72*time.Hour {
		t.Fatalf("status = %+v", status)
	}

	// A fresh clock over the same store picks the offset back up, the way a
	// process restart does.
	clk := clock.NewSimulated()
	second := NewTimeUsecase(clk, offsets)
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if clk.Offset() != 72*time.Hour {
		t.Fatalf("restored offset = %v, want 72h", clk.Offset())
	}
}

func TestTimeResetClearsStore(t *testing.T) {
	offsets := &fakeOffsetRepo{}
	ctx := context.Background()
	uc := NewTimeUsecase(clock.NewSimulated(), offsets)

	if _, err := uc.SetOffset(ctx, 24*time.Hour); err != nil {
		t.Fatalf("set offset: %v", err)
	}
	status, err := uc.Reset(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if status.Simulated {
		t.Fatalf("status = %+v, want real time", status)
	}
	if _, ok, _ := offsets.Offset(ctx); ok {
		t.Fatal("offset survived reset")
	}
}

func TestTimeTravelLandsOnTarget(t *testing.T) {
	uc := NewTimeUsecase(clock.NewSimulated(), &fakeOffsetRepo{})
	target := time.Now().AddDate(0, 0, 5)

	status, err := uc.Travel(context.Background(), target)
	if err != nil {
		t.Fatalf("travel: %v", err)
	}
	if diff := status.Now.Sub(target); diff < 0 || diff > time.Second {
		t.Fatalf("travel landed %v away from target", diff)
	}
}

func TestRestoreWithoutStoredOffsetIsNoop(t *testing.T) {
	clk := clock.NewSimulated()
	uc := NewTimeUsecase(clk, &fakeOffsetRepo{})
	if err := uc.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if clk.IsSimulated() {
		t.Fatal("restore invented an offset")
	}
}
