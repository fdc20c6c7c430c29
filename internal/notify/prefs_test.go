package notify

import "testing"

func TestShouldNotify(t *testing.T) {
	if !ShouldNotify(Preferences{}, EventApproved) {
		t.Fatalf("expected zero-value preferences to receive everything")
	}
	if ShouldNotify(Preferences{Muted: true}, EventApproved) {
		t.Fatalf("expected muted user to receive nothing")
	}

	p := Preferences{MutedEvents: []EventType{EventCreated, EventModified}}
	if ShouldNotify(p, EventCreated) {
		t.Fatalf("expected muted event type suppressed")
	}
	if !ShouldNotify(p, EventRejected) {
		t.Fatalf("expected unmuted event type delivered")
	}
}
