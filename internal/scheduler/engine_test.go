package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if _, err := engine.Schedule(Event{Kind: KindTaskRemoval, Ref: 2, TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if _, err := engine.Schedule(Event{Kind: KindTaskRemoval, Ref: 1, TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.Ref != 1 || second.Ref != 2 {
		t.Fatalf("unexpected order: first=%d second=%d", first.Ref, second.Ref)
	}
}

func TestEngineCancelPreventsDelivery(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	id, err := engine.Schedule(Event{Kind: KindNotificationDismiss, Ref: 1, TriggerAt: now.Add(30 * time.Millisecond)})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if _, err := engine.Schedule(Event{Kind: KindNotificationDismiss, Ref: 2, TriggerAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if !engine.Cancel(id) {
		t.Fatal("expected cancel to succeed")
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.Ref != 2 {
		t.Fatalf("expected only the uncancelled event, got ref %d", got.Ref)
	}
}

func TestEngineSlowConsumerLosesNothing(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	const total = 25
	for i := 0; i < total; i++ {
		if _, err := engine.Schedule(Event{
			Kind:      KindTaskRemoval,
			Ref:       int64(i),
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(80 * time.Millisecond)
	seen := make(map[int64]bool)
	for len(seen) < total {
		ev := waitEvent(t, engine.C(), time.Second)
		seen[ev.Ref] = true
	}
	if engine.Dropped() != 0 {
		t.Fatalf("expected no drops, got %d", engine.Dropped())
	}
}

func TestEngineStopCountsUndelivered(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()

	at := time.Now().UTC().Add(30 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if _, err := engine.Schedule(Event{Kind: KindNotificationRemove, Ref: int64(i), TriggerAt: at}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}
	time.Sleep(150 * time.Millisecond)
	engine.Stop()

	if engine.Dropped() != 2 {
		t.Fatalf("expected 2 undelivered events, got %d", engine.Dropped())
	}
	if ev, ok := <-engine.C(); !ok || ev.Ref != 0 {
		t.Fatalf("expected buffered event for ref 0, got %+v ok=%v", ev, ok)
	}
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected C closed after stop")
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if _, err := engine.Schedule(Event{Kind: KindTaskRemoval}); !errors.Is(err, ErrInvalidTriggerTime) {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if _, err := engine.Schedule(Event{Kind: KindTaskRemoval, TriggerAt: time.Now()}); !errors.Is(err, ErrEngineStopped) {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
	engine.Stop()
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
