package service_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-contacts-app/internal/domain"
	"go-contacts-app/internal/service"
)

type fixedSource struct{ n int }

func (f fixedSource) IntN(int) int { return f.n }

type randSource struct{ r *rand.Rand }

func (s randSource) IntN(n int) int { return s.r.Intn(n) }

func TestChooseOutcome_CoversAllOutcomes(t *testing.T) {
	src := randSource{rand.New(rand.NewSource(1))}
	seen := map[service.Outcome]int{}

	for i := 0; i < 4000; i++ {
		seen[service.ChooseOutcome(src)]++
	}

	want := []service.Outcome{
		service.OutcomeConnected,
		service.OutcomeBusy,
		service.OutcomeNoAnswer,
		service.OutcomeFailed,
	}
	require.Len(t, seen, 4, "no outcome outside the known four")
	for _, o := range want {
		assert.Greater(t, seen[o], 0, "outcome %s never drawn", o)
	}
}

func TestChooseOutcome_Deterministic(t *testing.T) {
	assert.Equal(t, service.OutcomeConnected, service.ChooseOutcome(fixedSource{0}))
	assert.Equal(t, service.OutcomeBusy, service.ChooseOutcome(fixedSource{1}))
	assert.Equal(t, service.OutcomeNoAnswer, service.ChooseOutcome(fixedSource{2}))
	assert.Equal(t, service.OutcomeFailed, service.ChooseOutcome(fixedSource{3}))
}

func TestSimulateCall_UsesInjectedSource(t *testing.T) {
	svc := service.NewContactService(nil, zap.NewNop(), service.WithRandSource(fixedSource{1}))

	got := svc.SimulateCall(&domain.Contact{Name: "Alice Johnson"})
	assert.Equal(t, service.OutcomeBusy, got)
}

func TestSimulateCall_LogsPerOutcomeSeverity(t *testing.T) {
	cases := []struct {
		src   fixedSource
		level string
	}{
		{fixedSource{0}, "info"},  // connected
		{fixedSource{1}, "warn"},  // busy
		{fixedSource{2}, "info"},  // no_answer
		{fixedSource{3}, "error"}, // failed
	}
	for _, tc := range cases {
		core, logs := newObservedLogger()
		svc := service.NewContactService(nil, core, service.WithRandSource(tc.src))
		svc.SimulateCall(&domain.Contact{Name: "Bob Williams"})

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, tc.level, entries[0].Level.String())
	}
}
