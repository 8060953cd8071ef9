package form

import "github.com/leadstack/leadform/pkg/completion"

// View is the form surface the orchestrator drives. The page (or the capture
// server's response) implements it; tests implement it in-memory.
type View interface {
	completion.View
	ShowLoading(msg string)
	HideLoading()
	DisableSubmit()
	EnableSubmit()
}

// OutcomeView is a View that records what the orchestrator did. The capture
// server renders its response from one; it doubles as the CLI's surface.
type OutcomeView struct {
	Step          int
	FormVisible   bool
	FormResets    int
	Loading       bool
	SubmitLocked  bool
	SuccessNotice string
	ErrorNotice   string
	WidgetMarkup  string
}

func NewOutcomeView() *OutcomeView {
	return &OutcomeView{Step: StepInput, FormVisible: true}
}

func (v *OutcomeView) ShowForm()                { v.FormVisible = true }
func (v *OutcomeView) HideForm()                { v.FormVisible = false }
func (v *OutcomeView) Reset()                   { v.FormResets++ }
func (v *OutcomeView) SetStep(step int)         { v.Step = step }
func (v *OutcomeView) NotifySuccess(msg string) { v.SuccessNotice = msg }
func (v *OutcomeView) NotifyError(msg string)   { v.ErrorNotice = msg }
func (v *OutcomeView) MountWidget(markup string) {
	v.WidgetMarkup = markup
}
func (v *OutcomeView) ShowLoading(string) { v.Loading = true }
func (v *OutcomeView) HideLoading()       { v.Loading = false }
func (v *OutcomeView) DisableSubmit()     { v.SubmitLocked = true }
func (v *OutcomeView) EnableSubmit()      { v.SubmitLocked = false }
