package usecase

import (
	"testing"

	"github.com/polkiloo/orderdesk/internal/config"
)

func TestNewContactRule(t *testing.T) {
	if !newContactRule(&config.Config{ContactRule: config.ContactRuleLenient})("phone") {
		t.Fatalf("expected lenient rule to accept plain contact")
	}
	if newContactRule(&config.Config{ContactRule: config.ContactRuleStrict})("phone") {
		t.Fatalf("expected strict rule to reject contact without separator")
	}
	if newContactRule(&config.Config{ContactRule: "unknown"})("phone") {
		t.Fatalf("expected unknown rule name to fall back to strict")
	}
}
