// Package wizard drives the multi-step MUN registration flow: sign-in,
// per-member form collection for Moot Court teams, server submission,
// payment, completion. The in-progress draft is persisted through a
// Store on every transition so the flow survives the full-page
// redirect of the external sign-in.
package wizard

import (
	"nitrutsav-backend/services"
)

type Step string

const (
	StepAuth          Step = "auth"
	StepForm          Step = "form"
	StepFormLeader    Step = "form-leader"
	StepFormTeammate1 Step = "form-teammate1"
	StepFormTeammate2 Step = "form-teammate2"
	StepPayment       Step = "payment"
	StepComplete      Step = "complete"
)

// IsMidForm reports whether the step is part of an in-progress team
// form. A restored mid-form draft takes precedence over a stale
// "payment" hint from the server on resume.
func (s Step) IsMidForm() bool {
	return s == StepForm || s == StepFormLeader || s == StepFormTeammate1 || s == StepFormTeammate2
}

// DraftVersion marks the draft layout. A stored draft written by an
// incompatible deployment is discarded on load, not misapplied.
const DraftVersion = 1

// Draft is the serializable accumulated state of one registration
// flow.
type Draft struct {
	Version   int                            `json:"version"`
	Step      Step                           `json:"step"`
	IsTeam    bool                           `json:"isTeam"`
	Leader    *services.MunRegistrationInput `json:"leader,omitempty"`
	Teammate1 *services.MunRegistrationInput `json:"teammate1,omitempty"`
	Teammate2 *services.MunRegistrationInput `json:"teammate2,omitempty"`
}

// RegisterFunc performs the server-side registration call for the
// accumulated draft. The wizard advances to payment only when it
// returns nil.
type RegisterFunc func(draft Draft) error

// ServerStatus is the check-registration answer consulted on resume.
type ServerStatus struct {
	IsRegistered      bool
	IsPaymentVerified bool
}

// Wizard is the per-identity state machine.
type Wizard struct {
	store   Store
	uid     string
	draft   Draft
	lastErr error
}

// New restores any persisted draft for the identity. Drafts with a
// foreign version are cleared and the wizard starts fresh.
func New(store Store, firebaseUID string) (*Wizard, error) {
	w := &Wizard{
		store: store,
		uid:   firebaseUID,
		draft: Draft{Version: DraftVersion, Step: StepAuth},
	}
	saved, err := store.Load(firebaseUID)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		if saved.Version == DraftVersion {
			w.draft = *saved
		} else if err := store.Clear(firebaseUID); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *Wizard) Step() Step   { return w.draft.Step }
func (w *Wizard) Draft() Draft { return w.draft }

// Err returns the error recorded by the last failed transition.
func (w *Wizard) Err() error { return w.lastErr }

func (w *Wizard) persist() error {
	return w.store.Save(w.uid, &w.draft)
}

// Resume decides the step after sign-in, reconciling the restored
// draft with the server's view. Payment-verified overrides everything;
// registered-but-unpaid jumps to payment unless a mid-form draft is
// in progress; otherwise the restored step stands, defaulting to the
// first form.
func (w *Wizard) Resume(status ServerStatus) Step {
	switch {
	case status.IsRegistered && status.IsPaymentVerified:
		w.draft.Step = StepComplete
	case status.IsRegistered:
		if !w.draft.Step.IsMidForm() {
			w.draft.Step = StepPayment
		}
	default:
		if w.draft.Step == StepAuth || w.draft.Step == StepPayment || w.draft.Step == StepComplete {
			w.draft.Step = StepForm
		}
	}
	return w.draft.Step
}

// SubmitMember consumes one validated member form. For a Moot Court
// committee the flow collects leader, teammate 1 and teammate 2
// before submitting; the terminal submission (and an individual one)
// goes to the server through register, and the wizard stays on the
// current step with the error recorded when that call is rejected.
func (w *Wizard) SubmitMember(in services.MunRegistrationInput, register RegisterFunc) (Step, error) {
	w.lastErr = nil

	switch w.draft.Step {
	case StepForm, StepFormLeader:
		if in.CommitteeChoice.IsTeamCommittee() {
			w.draft.IsTeam = true
			w.draft.Leader = &in
			w.draft.Step = StepFormTeammate1
			if err := w.persist(); err != nil {
				return w.draft.Step, err
			}
			return w.draft.Step, nil
		}
		w.draft.IsTeam = false
		w.draft.Leader = &in
		if err := register(w.draft); err != nil {
			w.lastErr = err
			return w.draft.Step, err
		}
		w.draft.Step = StepPayment
		if err := w.persist(); err != nil {
			return w.draft.Step, err
		}
		return w.draft.Step, nil

	case StepFormTeammate1:
		w.draft.Teammate1 = &in
		w.draft.Step = StepFormTeammate2
		if err := w.persist(); err != nil {
			return w.draft.Step, err
		}
		return w.draft.Step, nil

	case StepFormTeammate2:
		w.draft.Teammate2 = &in
		if err := w.persist(); err != nil {
			return w.draft.Step, err
		}
		if err := register(w.draft); err != nil {
			// Stay put: advancing would desynchronize the draft
			// from server truth.
			w.lastErr = err
			return w.draft.Step, err
		}
		w.draft.Step = StepPayment
		if err := w.persist(); err != nil {
			return w.draft.Step, err
		}
		return w.draft.Step, nil
	}

	return w.draft.Step, services.NewValidationError([]services.FieldError{
		{Field: "step", Message: "No form is expected at this step"},
	})
}

// TeammatePrefill returns the leader's shared choices a teammate form
// is pre-filled with.
func (w *Wizard) TeammatePrefill() *services.MunRegistrationInput {
	if w.draft.Leader == nil {
		return nil
	}
	return &services.MunRegistrationInput{
		StudentType:     w.draft.Leader.StudentType,
		CommitteeChoice: w.draft.Leader.CommitteeChoice,
		Institute:       w.draft.Leader.Institute,
		University:      w.draft.Leader.University,
		City:            w.draft.Leader.City,
	}
}

// CompletePayment purges all persisted draft state and finishes the
// flow.
func (w *Wizard) CompletePayment() error {
	if err := w.store.Clear(w.uid); err != nil {
		return err
	}
	w.draft = Draft{Version: DraftVersion, Step: StepComplete}
	return nil
}
