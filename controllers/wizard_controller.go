package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nitrutsav-backend/config"
	"nitrutsav-backend/services"
	"nitrutsav-backend/wizard"
)

func draftStore() wizard.Store {
	return wizard.NewGormStore(config.DB)
}

// GetDraft returns the caller's persisted registration draft, or null
// when none (or only a stale-version one) exists.
func GetDraft(c *gin.Context) {
	w, err := wizard.New(draftStore(), currentUID(c))
	if err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}
	draft := w.Draft()
	if draft.Step == wizard.StepAuth && draft.Leader == nil {
		respondOK(c, http.StatusOK, nil)
		return
	}
	respondOK(c, http.StatusOK, draft)
}

// PutDraft stores the caller's draft. Drafts from an incompatible
// deployment are refused rather than misapplied later.
func PutDraft(c *gin.Context) {
	var draft wizard.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	if draft.Version != wizard.DraftVersion {
		respondBadRequest(c, "Unsupported draft version")
		return
	}
	if err := draftStore().Save(currentUID(c), &draft); err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Draft saved"})
}

// DeleteDraft discards the caller's draft.
func DeleteDraft(c *gin.Context) {
	if err := draftStore().Clear(currentUID(c)); err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}
	respondOK(c, http.StatusOK, gin.H{"message": "Draft discarded"})
}

// ResumeWizard reconciles the restored draft with the server's
// registration state and returns the step the client should render.
func ResumeWizard(c *gin.Context) {
	uid := currentUID(c)
	w, err := wizard.New(draftStore(), uid)
	if err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}

	check, err := services.CheckMunRegistration(config.DB, uid, currentEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	step := w.Resume(wizard.ServerStatus{
		IsRegistered:      check.IsRegistered,
		IsPaymentVerified: check.IsPaymentVerified,
	})
	respondOK(c, http.StatusOK, gin.H{
		"step":    step,
		"draft":   w.Draft(),
		"prefill": w.TeammatePrefill(),
		"isTeam":  w.Draft().IsTeam,
		"check":   check,
	})
}

// SubmitWizardStep feeds one member form into the wizard. The final
// submission (individual, or teammate 2 of a Moot Court team) runs
// the server-side registration; on rejection the wizard stays on the
// current step and the error is surfaced.
func SubmitWizardStep(c *gin.Context) {
	var input services.MunRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	uid := currentUID(c)
	w, err := wizard.New(draftStore(), uid)
	if err != nil {
		respondError(c, services.NewInternalError(err))
		return
	}
	if w.Step() == wizard.StepAuth {
		w.Resume(wizard.ServerStatus{})
	}

	var result interface{}
	register := func(draft wizard.Draft) error {
		if draft.IsTeam {
			teamResult, err := services.RegisterMunTeam(config.DB, *draft.Leader, *draft.Teammate1, *draft.Teammate2, uid)
			if err != nil {
				return err
			}
			result = teamResult
			return nil
		}
		individualResult, err := services.RegisterMunIndividual(config.DB, *draft.Leader, uid)
		if err != nil {
			return err
		}
		result = individualResult
		return nil
	}

	step, err := w.SubmitMember(input, register)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"step":         step,
		"prefill":      w.TeammatePrefill(),
		"registration": result,
	})
}
