package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	cases := []struct {
		password string
		wantErr  bool
	}{
		{"abc12345", false},
		{"longenough1", false},
		{"Ab1Ab1Ab1", false},
		{"short1", true},
		{"onlyletters", true},
		{"12345678", true},
		{"", true},
	}
	for _, tc := range cases {
		err := VerifyPasswordComplexity(tc.password)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrWeakPassword, "password %q", tc.password)
		} else {
			assert.NoError(t, err, "password %q", tc.password)
		}
	}
}

func TestSessionBroadcaster(t *testing.T) {
	var b sessionBroadcaster

	var got []SessionEvent
	unsubscribe := b.subscribe(func(ev SessionEvent) {
		got = append(got, ev)
	})

	b.publish(SessionEvent{Kind: SessionStarted, AccountID: "acct-1"})
	assert.Len(t, got, 1)
	assert.Equal(t, "acct-1", got[0].AccountID)

	unsubscribe()
	b.publish(SessionEvent{Kind: SessionEnded, AccountID: "acct-1"})
	assert.Len(t, got, 1, "no events after unsubscribe")

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestSessionBroadcasterMultipleSubscribers(t *testing.T) {
	var b sessionBroadcaster

	var first, second int
	unsubFirst := b.subscribe(func(SessionEvent) { first++ })
	b.subscribe(func(SessionEvent) { second++ })

	b.publish(SessionEvent{Kind: SessionStarted, AccountID: "acct-2"})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	unsubFirst()
	b.publish(SessionEvent{Kind: SessionEnded, AccountID: "acct-2"})
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
