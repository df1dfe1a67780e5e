package realtime

import "testing"

func TestParseNotification(t *testing.T) {
	ev, err := parseNotification(`{"action":"INSERT","table":"products","record":{"name":"Besan Ladoo"}}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ev.Kind != KindInsert {
		t.Fatalf("expected INSERT, got %q", ev.Kind)
	}
	if ev.Table != "products" {
		t.Fatalf("expected products, got %q", ev.Table)
	}
	if len(ev.Payload) == 0 {
		t.Fatal("expected record payload carried through")
	}
}

func TestParseNotificationRejectsGarbage(t *testing.T) {
	if _, err := parseNotification("not json"); err == nil {
		t.Fatal("expected error for undecodable body")
	}
}

func TestKindMessage(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindInsert, "New product added!"},
		{KindUpdate, "Products updated!"},
		{KindDelete, "Product removed"},
		{Kind("TRUNCATE"), ""},
	}
	for _, c := range cases {
		if got := c.kind.Message(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if Unsubscribed.String() != "unsubscribed" ||
		Subscribing.String() != "subscribing" ||
		Subscribed.String() != "subscribed" {
		t.Fatal("state strings mismatch")
	}
}
