// Package quiz implements the onboarding wizard state container. A Wizard
// is scoped to one user's session and is not shared between goroutines
// except for the submit guard, which tolerates a double-tap on the final
// step.
package quiz

import (
	"context"
	"errors"
	"sync"

	clinicflow "github.com/clinicflow/backend"
)

// Step indexes the linear wizard flow. Transitions are +1/-1 only; the
// final hop to StepSuccess happens through Submit after the network call
// completes.
type Step int

const (
	StepWelcome Step = iota
	StepClinicInfo
	StepVisualIdentity
	StepBrandStyle
	StepBrandMessage
	StepMarketingGoals
	StepFinal
	StepSuccess
)

var ErrSubmitInFlight = errors.New("submit already in flight")

// Update carries a partial answer set. Nil fields are left untouched;
// non-nil fields overwrite, last write wins. Validation is the caller's
// concern, not the container's.
type Update struct {
	ClinicName      *string
	WhatsApp        *string
	Instagram       *string
	City            *string
	PrimaryColor    *string
	SecondaryColor  *string
	FontStyle       *clinicflow.FontStyle
	BrandVoices     []clinicflow.BrandVoice
	MarketingGoals  []clinicflow.MarketingGoal
	Differentiators *string
	Slogan          *string
	VisualStyle     *clinicflow.VisualStyle
}

type Wizard struct {
	projectID string
	submitter clinicflow.QuizService

	mu      sync.Mutex
	step    Step
	busy    bool
	answers clinicflow.QuizAnswers
}

func NewWizard(projectID string, submitter clinicflow.QuizService) *Wizard {
	return &Wizard{
		projectID: projectID,
		submitter: submitter,
	}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Answers() clinicflow.QuizAnswers {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.answers
}

func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Advance moves one step forward, clamped at StepSuccess.
func (w *Wizard) Advance() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < StepSuccess {
		w.step++
	}
	return w.step
}

// Retreat moves one step back, clamped at StepWelcome.
func (w *Wizard) Retreat() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepWelcome {
		w.step--
	}
	return w.step
}

// Apply merges a partial update into the accumulated answers.
func (w *Wizard) Apply(u Update) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if u.ClinicName != nil {
		w.answers.ClinicName = *u.ClinicName
	}
	if u.WhatsApp != nil {
		w.answers.WhatsApp = *u.WhatsApp
	}
	if u.Instagram != nil {
		w.answers.Instagram = *u.Instagram
	}
	if u.City != nil {
		w.answers.City = *u.City
	}
	if u.PrimaryColor != nil {
		w.answers.PrimaryColor = *u.PrimaryColor
	}
	if u.SecondaryColor != nil {
		w.answers.SecondaryColor = *u.SecondaryColor
	}
	if u.FontStyle != nil {
		w.answers.FontStyle = *u.FontStyle
	}
	if u.BrandVoices != nil {
		w.answers.BrandVoices = u.BrandVoices
	}
	if u.MarketingGoals != nil {
		w.answers.MarketingGoals = u.MarketingGoals
	}
	if u.Differentiators != nil {
		w.answers.Differentiators = *u.Differentiators
	}
	if u.Slogan != nil {
		w.answers.Slogan = *u.Slogan
	}
	if u.VisualStyle != nil {
		w.answers.VisualStyle = *u.VisualStyle
	}
}

// Submit sends the accumulated snapshot once. A second call while the
// first is in flight fails with ErrSubmitInFlight and leaves state alone.
// On failure the step does not move; on success the wizard lands on
// StepSuccess.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrSubmitInFlight
	}
	w.busy = true
	snapshot := w.answers
	w.mu.Unlock()

	err := w.submitter.SubmitQuiz(ctx, w.projectID, snapshot)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false
	if err != nil {
		return err
	}
	if w.step < StepSuccess {
		w.step++
	}
	return nil
}
