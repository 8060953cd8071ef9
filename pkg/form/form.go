// Package form owns the lifecycle of one capture form: initialization,
// pre-submit checks, the submission state machine and the hand-off to the
// completion router.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/completion"
	"github.com/leadstack/leadform/pkg/emailcheck"
	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/locale"
	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/relay"
	"github.com/leadstack/leadform/pkg/session"
	"github.com/leadstack/leadform/pkg/validate"
)

// Descriptor identifies one manageable form instance on a page. Immutable.
type Descriptor struct {
	FormID      string
	ProductName string
	ProductID   string
}

// Input is the raw field set of one submit event.
type Input struct {
	Name  string
	Phone string
	Email string
}

// TrackEvent is the analytics event dispatched alongside the transport.
type TrackEvent struct {
	Event        string
	Phone        string
	Email        string
	ConversionID string
}

// ErrInFlight is returned when a submit arrives while another one for the
// same form is still pending. Enforced as a hard invariant, not just a
// disabled control.
var ErrInFlight = errors.New("form: submission already in flight")

// Config wires one handler's collaborators.
type Config struct {
	Descriptor Descriptor
	Locale     *locale.Locale
	Session    *session.Context
	Geo        *geo.Resolver
	Tracker    *attribution.Tracker
	Relay      *relay.Client
	Builder    *payload.Builder

	// EmailCheck, when set, gates submission on email-domain existence.
	EmailCheck *emailcheck.Checker

	// WidgetHash and PageMarkup feed the embedded completion path.
	WidgetHash string
	PageMarkup string

	// Track receives the analytics event. Nil falls back to a debug log.
	Track func(TrackEvent)
}

// Handler runs the submission state machine for one form.
type Handler struct {
	cfg    Config
	mode   completion.Mode
	router *completion.Router
	rules  map[validate.FieldKind][]validate.FieldRule

	mu       sync.Mutex
	state    State
	step     int
	inFlight atomic.Bool
}

// NewHandler initializes a form handler. A missing locale dictionary is a
// configuration error and aborts initialization of this handler only;
// independent forms on the page are unaffected.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Locale == nil {
		loc, err := locale.Resolve(cfg.Session.LocaleCode)
		if err != nil {
			return nil, err
		}
		cfg.Locale = loc
	}
	if cfg.Descriptor.FormID == "" {
		return nil, errors.New("form: descriptor needs a form id")
	}
	if cfg.Descriptor.ProductName != "" {
		cfg.Session.ProductName = cfg.Descriptor.ProductName
	}
	if cfg.Descriptor.ProductID != "" {
		cfg.Session.ProductID = cfg.Descriptor.ProductID
	}

	mode := completion.ModeFor(cfg.Session)

	return &Handler{
		cfg:  cfg,
		mode: mode,
		router: &completion.Router{
			Mode:       mode,
			Locale:     cfg.Locale,
			Session:    cfg.Session,
			WidgetHash: cfg.WidgetHash,
			PageMarkup: cfg.PageMarkup,
		},
		rules: map[validate.FieldKind][]validate.FieldRule{
			validate.FieldName:  validate.BuildFieldRules(validate.FieldName, true, cfg.Locale),
			validate.FieldPhone: validate.BuildFieldRules(validate.FieldPhone, true, cfg.Locale),
			validate.FieldEmail: validate.BuildFieldRules(validate.FieldEmail, true, cfg.Locale),
		},
		state: Idle,
		step:  StepInput,
	}, nil
}

func (h *Handler) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Handler) Step() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.step
}

func (h *Handler) Mode() completion.Mode { return h.mode }

func (h *Handler) setState(s State) {
	h.mu.Lock()
	h.state = s
	h.mu.Unlock()
}

func (h *Handler) setStep(step int, view View) {
	h.mu.Lock()
	h.step = step
	h.mu.Unlock()
	view.SetStep(step)
}

// Revalidate runs one field's rule set against a live value, sanitizing the
// phone field first. It returns the value the page should display.
func (h *Handler) Revalidate(kind validate.FieldKind, value string) (string, error) {
	if kind == validate.FieldPhone {
		value = validate.SanitizePhone(value)
	}
	rules, ok := h.rules[kind]
	if !ok {
		rules = validate.BuildFieldRules(kind, false, h.cfg.Locale)
	}
	return value, validate.Run(kind.String(), value, rules)
}

// Submit intercepts one submit event and drives the machine to a settled
// state. A *validate.Rejection return means the pre-checks failed and the
// form was restored; a nil return with a Completed state means success.
func (h *Handler) Submit(ctx context.Context, input Input, view View) error {
	if !h.inFlight.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer h.inFlight.Store(false)

	h.setState(Validating)

	lead, err := h.preCheck(ctx, input)
	if err != nil {
		h.reject(view, err)
		return err
	}

	view.DisableSubmit()
	view.HideForm()
	view.ShowLoading(h.cfg.Locale.MustTranslate(locale.MsgLoading))
	h.setState(Submitting)

	marks := h.snapshotMarks(ctx)
	info := h.cfg.Geo.Resolve(ctx)
	fields := h.cfg.Builder.Build(lead, h.cfg.Session, info, marks)

	pending := h.cfg.Relay.Submit(ctx, fields)
	h.track(lead)

	prevStep := h.Step()
	h.setStep(StepSubmitting, view)

	ok := h.router.Finish(ctx, pending, lead, marks, view)

	view.HideLoading()
	view.EnableSubmit()

	if !ok {
		// Restore the pre-submit step along with form visibility; the user
		// is back where they were and may resubmit.
		h.setStep(prevStep, view)
		h.setState(Failed)
		return nil
	}

	h.setStep(StepCompleted, view)
	if h.mode == completion.EmbeddedRedirect {
		h.setState(EmbeddedComplete)
	} else {
		h.setState(InlineComplete)
	}
	return nil
}

// preCheck runs the synchronous and asynchronous validation gates and
// returns the normalized lead.
func (h *Handler) preCheck(ctx context.Context, input Input) (payload.Lead, error) {
	name := utils.TrimSpaces(input.Name)
	email := strings.TrimSpace(input.Email)
	phoneRaw := validate.SanitizePhone(input.Phone)

	if err := validate.Run("name", name, h.rules[validate.FieldName]); err != nil {
		return payload.Lead{}, err
	}
	if err := validate.Run("phone", phoneRaw, h.rules[validate.FieldPhone]); err != nil {
		return payload.Lead{}, err
	}
	if err := validate.Run("email", email, h.rules[validate.FieldEmail]); err != nil {
		return payload.Lead{}, err
	}

	phone, err := validate.ParsePhone(phoneRaw, h.dialCountry(ctx),
		h.cfg.Locale.MustTranslate(locale.MsgPhoneInvalid))
	if err != nil {
		return payload.Lead{}, err
	}

	if h.cfg.EmailCheck != nil && !h.cfg.EmailCheck.Check(ctx, email) {
		return payload.Lead{}, &validate.Rejection{
			Field:   "email",
			Message: h.cfg.Locale.MustTranslate(locale.MsgEmailNotExists),
		}
	}

	return payload.Lead{Name: name, Phone: phone, Email: email}, nil
}

// dialCountry prefers the geo-resolved country, falling back to the locale's
// dial default when enrichment bottomed out.
func (h *Handler) dialCountry(ctx context.Context) string {
	if h.cfg.Geo != nil {
		if c := h.cfg.Geo.Resolve(ctx).Country; c != "" {
			return c
		}
	}
	return h.cfg.Locale.DialCountry
}

func (h *Handler) reject(view View, err error) {
	var rej *validate.Rejection
	if errors.As(err, &rej) {
		view.NotifyError(rej.Message)
	} else {
		view.NotifyError(h.cfg.Locale.MustTranslate(locale.MsgTryAgain))
	}
	view.EnableSubmit()
	// Rejected is transient: the handler returns to Idle so the user can
	// correct the input and resubmit.
	h.setState(Rejected)
	h.setState(Idle)
}

func (h *Handler) snapshotMarks(ctx context.Context) map[string]string {
	if h.cfg.Tracker == nil {
		return nil
	}
	marks, err := h.cfg.Tracker.Snapshot(ctx)
	if err != nil {
		utils.Log.Warnf("form %s: attribution snapshot failed: %v", h.cfg.Descriptor.FormID, err)
		return nil
	}
	return marks
}

func (h *Handler) track(lead payload.Lead) {
	ev := TrackEvent{
		Event:        "lead",
		Phone:        lead.Phone,
		Email:        lead.Email,
		ConversionID: strings.ReplaceAll(uuid.NewString(), "-", ""),
	}
	if h.cfg.Track != nil {
		h.cfg.Track(ev)
		return
	}
	utils.Log.WithField("conversion_id", ev.ConversionID).Debug("lead event")
}
