package table

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tsawler/quire/internal/serial"
	"github.com/tsawler/quire/model"
)

// Defaults for a new table.
const (
	// DefaultWidthPercentage is the share of the available layout width a
	// table occupies when no absolute width is set.
	DefaultWidthPercentage = 80.0

	// DefaultAlignment positions the table within the available width.
	DefaultAlignment = model.AlignCenter

	// DefaultPlacement rejects overlapping placements.
	DefaultPlacement = PlacementStrict

	// DefaultMergePolicy absorbs irregular nested widths and reports them as warnings.
	DefaultMergePolicy = MergeBestEffort
)

// Placement selects how overlapping placements are handled.
type Placement int

const (
	// PlacementStrict rejects a placement whose rectangle touches an
	// occupied or reserved slot.
	PlacementStrict Placement = iota
	// PlacementLenient lets a placement overwrite whatever it covers.
	PlacementLenient
)

func (p Placement) String() string {
	if p == PlacementLenient {
		return "lenient"
	}
	return "strict"
}

// MergePolicy selects how Complete treats nested tables whose widths do not
// reconcile within tolerance.
type MergePolicy int

const (
	// MergeBestEffort flattens anyway and records a Warning.
	MergeBestEffort MergePolicy = iota
	// MergeStrict makes Complete fail with ErrDegenerateMerge.
	MergeStrict
)

func (m MergePolicy) String() string {
	if m == MergeStrict {
		return "strict"
	}
	return "best-effort"
}

// Option configures a Table at construction.
type Option func(*options)

type options struct {
	rows      int
	placement Placement
	merge     MergePolicy
	autoFill  bool
	ids       serial.Generator
	logger    *log.Logger
}

func defaultOptions() options {
	return options{
		rows:      0,
		placement: DefaultPlacement,
		merge:     DefaultMergePolicy,
		autoFill:  false,
		ids:       serial.Default(),
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithRows pre-allocates n blank rows. Negative values are treated as zero.
func WithRows(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.rows = n
	}
}

// WithPlacement selects strict or lenient placement.
func WithPlacement(p Placement) Option {
	return func(o *options) { o.placement = p }
}

// WithMergePolicy selects how irregular nested widths are handled.
func WithMergePolicy(m MergePolicy) Option {
	return func(o *options) { o.merge = m }
}

// WithAutoFill makes Complete fill every empty slot with a blank copy of the
// default cell.
func WithAutoFill(enabled bool) Option {
	return func(o *options) { o.autoFill = enabled }
}

// WithIDGenerator sets the source of table ids. A nil generator keeps the default.
func WithIDGenerator(g serial.Generator) Option {
	return func(o *options) {
		if g != nil {
			o.ids = g
		}
	}
}

// WithLogger sets the logger used for debug output. A nil logger keeps the
// default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
