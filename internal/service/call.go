package service

import (
	"math/rand"

	"go.uber.org/zap"

	"go-contacts-app/internal/domain"
)

type Outcome string

const (
	OutcomeConnected Outcome = "connected"
	OutcomeBusy      Outcome = "busy"
	OutcomeNoAnswer  Outcome = "no_answer"
	OutcomeFailed    Outcome = "failed"
)

var outcomes = []Outcome{OutcomeConnected, OutcomeBusy, OutcomeNoAnswer, OutcomeFailed}

// IntN is the random source for outcome selection, satisfied by *rand.Rand.
type IntN interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.Intn(n) }

// ChooseOutcome picks one of the four call outcomes uniformly at random.
func ChooseOutcome(src IntN) Outcome {
	return outcomes[src.IntN(len(outcomes))]
}

// SimulateCall picks a random outcome for the contact and logs it at a severity
// matching its meaning. There is no telephony behind this and nothing is
// persisted; the endpoint exists to drive the action flow in the client.
func (s *ContactService) SimulateCall(c *domain.Contact) Outcome {
	outcome := ChooseOutcome(s.rnd)
	switch outcome {
	case OutcomeConnected:
		s.log.Info("call connected", zap.String("contact", c.Name))
	case OutcomeBusy:
		s.log.Warn("call failed, line busy", zap.String("contact", c.Name))
	case OutcomeNoAnswer:
		s.log.Info("call not answered", zap.String("contact", c.Name))
	default:
		s.log.Error("call failed unexpectedly", zap.String("contact", c.Name))
	}
	return outcome
}
