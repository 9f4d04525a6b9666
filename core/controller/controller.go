// Package controller wires the estimator and the portfolio filter to a
// host view. The controller holds the only mutable UI state (the active
// filter selection); everything else is computed fresh per interaction.
// It is single-actor: all methods are driven by one event stream and
// run to completion without suspending.
package controller

import (
	"time"

	"go.uber.org/zap"

	"wifi-estimator/core/analytics"
	"wifi-estimator/core/catalog"
	"wifi-estimator/core/estimate"
	"wifi-estimator/core/output"
	"wifi-estimator/core/portfolio"
	"wifi-estimator/core/types"
	"wifi-estimator/core/validate"
	"wifi-estimator/internal/errors"
	"wifi-estimator/internal/logging"
)

// NotifyMessage is the single user-visible notification for any
// unexpected failure at the submission boundary. Every error path
// returns the controller to an interactive state.
const NotifyMessage = "An error occurred while processing your request. Please try again."

// DefaultRevealDelay is the pause before the deferred result reveal.
const DefaultRevealDelay = 300 * time.Millisecond

// View is the host view binding, injected at construction. The
// controller pushes plain data out through it and never queries the
// host document itself.
type View interface {
	// ShowFieldError surfaces an inline validation message on a field
	ShowFieldError(field, message string)

	// ClearFieldError removes a field's validation message
	ClearFieldError(field string)

	// ShowResult renders a completed estimate summary
	ShowResult(summary *output.Summary)

	// ShowNotification surfaces a one-off notification message
	ShowNotification(message string)

	// SetItemVisibility shows or hides the portfolio card at index.
	// Making a hidden card visible triggers the host's fade-in cue.
	SetItemVisibility(index int, visible bool)

	// RevealResult scrolls the result into view
	RevealResult()
}

// Scheduler defers a function by a fixed delay, fire-and-forget.
// No cancellation, no ordering guarantee beyond "after the delay".
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler schedules with the runtime timer. A nil Scheduler in
// Config disables deferred work entirely, which is the right choice in
// headless and test contexts.
type TimerScheduler struct{}

// After implements Scheduler.
func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Config assembles a controller's collaborators.
type Config struct {
	// View is the host view binding (required)
	View View

	// Catalog resolves building types and usage profiles (required)
	Catalog *catalog.Catalog

	// Items is the portfolio card list with precomputed category tags
	Items []types.PortfolioItem

	// Filters is the known filter token set; defaults to
	// portfolio.DefaultFilters when empty
	Filters []string

	// Tracker receives analytics events; defaults to a no-op
	Tracker analytics.Tracker

	// Scheduler runs the deferred result reveal; nil disables it
	Scheduler Scheduler

	// RevealDelay overrides DefaultRevealDelay when positive
	RevealDelay time.Duration
}

// Controller is the estimator-and-filter UI component.
type Controller struct {
	view        View
	catalog     *catalog.Catalog
	items       []types.PortfolioItem
	selection   *portfolio.Selection
	tracker     analytics.Tracker
	scheduler   Scheduler
	revealDelay time.Duration
}

// New creates a controller. The filter selection starts at "all".
func New(cfg Config) *Controller {
	filters := cfg.Filters
	if len(filters) == 0 {
		filters = portfolio.DefaultFilters()
	}

	tracker := cfg.Tracker
	if tracker == nil {
		tracker = analytics.NopTracker{}
	}

	delay := cfg.RevealDelay
	if delay <= 0 {
		delay = DefaultRevealDelay
	}

	return &Controller{
		view:        cfg.View,
		catalog:     cfg.Catalog,
		items:       cfg.Items,
		selection:   portfolio.NewSelection(filters...),
		tracker:     tracker,
		scheduler:   cfg.Scheduler,
		revealDelay: delay,
	}
}

// SubmitEstimate runs the full estimate flow for a raw form:
// parse, validate, compute, render, track, and schedule the reveal.
// Validation failures surface as inline field messages and block the
// computation; any other failure surfaces as the single notification.
// Nothing here can take down the host session.
func (c *Controller) SubmitEstimate(form validate.RawForm) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("estimate submission failed",
				zap.Any("panic", r))
			c.view.ShowNotification(NotifyMessage)
		}
	}()

	req, err := validate.ParseRequest(form, c.catalog)
	if err != nil {
		c.reportSubmitError(err)
		return
	}
	c.view.ClearFieldError("area")

	est := estimate.Compute(req)
	services := estimate.AdditionalServices(req)
	summary := output.BuildSummary(req, est, services)

	c.view.ShowResult(summary)
	c.tracker.Track(analytics.EstimateCalculated())

	if c.scheduler != nil {
		c.scheduler.After(c.revealDelay, c.view.RevealResult)
	}
}

// CheckArea gives live field feedback for the area input without
// submitting anything.
func (c *Controller) CheckArea(raw string) validate.AreaResult {
	res := validate.Area(raw)
	if res.OK() {
		c.view.ClearFieldError("area")
	} else {
		c.view.ShowFieldError("area", res.Message())
	}
	return res
}

// ActivateFilter switches the active filter and pushes the resulting
// per-item visibility to the view. Unknown tokens are ignored after a
// log line; the current selection stays usable.
func (c *Controller) ActivateFilter(token string) {
	if err := c.selection.Activate(token); err != nil {
		logging.Warn("ignoring unknown filter token", zap.String("token", token))
		return
	}

	filtered := portfolio.Filter(c.items, c.selection.Current())
	for i, item := range filtered {
		c.view.SetItemVisibility(i, item.Visible)
	}
}

// ActiveFilter returns the current filter token.
func (c *Controller) ActiveFilter() string {
	return c.selection.Current()
}

func (c *Controller) reportSubmitError(err error) {
	if e := errors.AsError(err); e != nil {
		switch e.Type {
		case errors.TypeValidation:
			c.view.ShowFieldError(e.Field(), e.Message)
			return
		case errors.TypeNotFound:
			// A missing required selection is an assembly failure,
			// not a field the user can correct inline.
			logging.Error("estimate input assembly failed", zap.Error(err))
			c.view.ShowNotification(NotifyMessage)
			return
		}
	}
	logging.Error("estimate submission failed", zap.Error(err))
	c.view.ShowNotification(NotifyMessage)
}
